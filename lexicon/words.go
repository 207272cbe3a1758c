package lexicon

// basicWords is the embedded word list: function words, common general
// vocabulary, and the terms that dominate document headings (front matter,
// sectioning, business and technical reports).
const basicWords = `
a about above abstract accept access account act action active activities
activity add addendum additional address administration advanced after
against age agency agenda agreement aid all also alternative am an analysis
and annex annual answer any appendix application apply approach approval
april are area article as assessment at audit august author authority
available average back background balance base based basic be because been
before begin below benefit benefits best between bibliography board body
book both brief budget build business but by calendar can capital case
catalog category center certificate chair change chapter chart check
children city class clause close code comment comments committee common
community company comparison complete compliance conclusion conclusions
condition conditions conference confidential consider contact contents
context contract control copy corporate cost costs could council country
course cover create criteria current daily data date day december decision
default definition definitions delivery demand department description design
detail details development diagram did different digital direction director
disclaimer discussion distribution division do document documentation does
draft during each early east economic edition education effect effective
eight election electronic element email end energy english environment
equipment error estimate evaluation even event every evidence example
executive exhibit expense experience external fall family features february
federal fee fees field figure file final finance financial finding findings
first fiscal five focus follow following food for forecast foreword form
format formula forward four framework free friday from function fund funding
further future general glossary goal goals good governance government grade
grant group growth guide guidelines half hand have he header health hearing
help her high highlights his history home hour house how human idea if
impact implementation important in income increase independent index
industry information initial input inside insurance interest interim
internal international into introduction inventory investment is issue
issues it item items january job july june key knowledge labor language
large last late law leadership learning left legal letter level license
life limit limited line list literature local location long low main major
make management manager manual many march margin market material materials
matrix may measure media medical meeting member members memo memorandum
method methodology methods metric middle milestone minutes mission model
monday money month monthly more most motion much must name national need
network new next nine no north note notes notice november number objective
objectives observation october of off offer office officer on one only open
operation operations option order organization other our out outline output
outside over overview owner page part participants parties partner parts
party payment people per performance period person personal personnel phase
phone place plan planning platform please point policies policy population
position possible power practice preface preliminary present price primary
principle print priority privacy private problem procedure procedures
process product production profile program progress project property
proposal protocol provision public purchase purpose quality quarter
quarterly question questions rate rating ratio reading real reason recent
recommendation recommendations record records reference references region
register regulation related release remarks report reporting request
requirement requirements research reserve resolution resource resources
response result results return revenue review revision right risk roadmap
role rule rules safety sample saturday schedule school scope score season
second secondary section sector security see self seminar september series
service services session set seven several shall share she sheet short
should side signature site situation six size small social software some
source south space special specification spring staff stage standard
standards start state statement statistics status step strategic strategy
structure study subject submission such summary sunday supply support survey
system table target task tax team technical technology template ten term
terms test testing text than that the their theory there these they third
this three thursday time timeline title to today top topic topics total
training transfer transition travel trend tuesday two type under unit
university until up update upon use user value vendor version view vision
volume vote warranty was water way we web webinar wednesday week weekly
welcome west what when where which while white who why will winter with
within without word work working workshop would year yearly yes you your
zero zone
`
