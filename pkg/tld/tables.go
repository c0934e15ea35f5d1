// Built-in TLD tables, taken from the single-label rules of the ICANN section
// of the public suffix list (https://publicsuffix.org/list/). "arpa" is
// infrastructure; two-letter labels and the IDN ccTLDs listed before the new
// gTLD block are country-code; the rest are generic. Keep each table sorted.

package tld

// infrastructureTLDs holds the infrastructure top-level domains.
var infrastructureTLDs = []string{
	"arpa",
}

// genericTLDs holds the generic top-level domains, legacy and new gTLDs.
var genericTLDs = []string{
	"aaa",
	"aarp",
	"abarth",
	"abb",
	"abbott",
	"abbvie",
	"abc",
	"able",
	"abogado",
	"abudhabi",
	"academy",
	"accenture",
	"accountant",
	"accountants",
	"aco",
	"actor",
	"ads",
	"adult",
	"aeg",
	"aero",
	"aetna",
	"afl",
	"africa",
	"agakhan",
	"agency",
	"aig",
	"airbus",
	"airforce",
	"airtel",
	"akdn",
	"alfaromeo",
	"alibaba",
	"alipay",
	"allfinanz",
	"allstate",
	"ally",
	"alsace",
	"alstom",
	"amazon",
	"americanexpress",
	"americanfamily",
	"amex",
	"amfam",
	"amica",
	"amsterdam",
	"analytics",
	"android",
	"anquan",
	"anz",
	"aol",
	"apartments",
	"app",
	"apple",
	"aquarelle",
	"arab",
	"aramco",
	"archi",
	"army",
	"art",
	"arte",
	"asda",
	"asia",
	"associates",
	"athleta",
	"attorney",
	"auction",
	"audi",
	"audible",
	"audio",
	"auspost",
	"author",
	"auto",
	"autos",
	"avianca",
	"aws",
	"axa",
	"azure",
	"baby",
	"baidu",
	"banamex",
	"bananarepublic",
	"band",
	"bank",
	"bar",
	"barcelona",
	"barclaycard",
	"barclays",
	"barefoot",
	"bargains",
	"baseball",
	"basketball",
	"bauhaus",
	"bayern",
	"bbc",
	"bbt",
	"bbva",
	"bcg",
	"bcn",
	"beats",
	"beauty",
	"beer",
	"bentley",
	"berlin",
	"best",
	"bestbuy",
	"bet",
	"bharti",
	"bible",
	"bid",
	"bike",
	"bing",
	"bingo",
	"bio",
	"biz",
	"black",
	"blackfriday",
	"blockbuster",
	"blog",
	"bloomberg",
	"blue",
	"bms",
	"bmw",
	"bnpparibas",
	"boats",
	"boehringer",
	"bofa",
	"bom",
	"bond",
	"boo",
	"book",
	"booking",
	"bosch",
	"bostik",
	"boston",
	"bot",
	"boutique",
	"box",
	"bradesco",
	"bridgestone",
	"broadway",
	"broker",
	"brother",
	"brussels",
	"build",
	"builders",
	"business",
	"buy",
	"buzz",
	"bzh",
	"cab",
	"cafe",
	"cal",
	"call",
	"calvinklein",
	"cam",
	"camera",
	"camp",
	"canon",
	"capetown",
	"capital",
	"capitalone",
	"car",
	"caravan",
	"cards",
	"care",
	"career",
	"careers",
	"cars",
	"casa",
	"case",
	"cash",
	"casino",
	"cat",
	"catering",
	"catholic",
	"cba",
	"cbn",
	"cbre",
	"cbs",
	"center",
	"ceo",
	"cern",
	"cfa",
	"cfd",
	"chanel",
	"channel",
	"charity",
	"chase",
	"chat",
	"cheap",
	"chintai",
	"christmas",
	"chrome",
	"church",
	"cipriani",
	"circle",
	"cisco",
	"citadel",
	"citi",
	"citic",
	"city",
	"cityeats",
	"claims",
	"cleaning",
	"click",
	"clinic",
	"clinique",
	"clothing",
	"cloud",
	"club",
	"clubmed",
	"coach",
	"codes",
	"coffee",
	"college",
	"cologne",
	"com",
	"comcast",
	"commbank",
	"community",
	"company",
	"compare",
	"computer",
	"comsec",
	"condos",
	"construction",
	"consulting",
	"contact",
	"contractors",
	"cooking",
	"cookingchannel",
	"cool",
	"coop",
	"corsica",
	"country",
	"coupon",
	"coupons",
	"courses",
	"cpa",
	"credit",
	"creditcard",
	"creditunion",
	"cricket",
	"crown",
	"crs",
	"cruise",
	"cruises",
	"cuisinella",
	"cymru",
	"cyou",
	"dabur",
	"dad",
	"dance",
	"data",
	"date",
	"dating",
	"datsun",
	"day",
	"dclk",
	"dds",
	"deal",
	"dealer",
	"deals",
	"degree",
	"delivery",
	"dell",
	"deloitte",
	"delta",
	"democrat",
	"dental",
	"dentist",
	"desi",
	"design",
	"dev",
	"dhl",
	"diamonds",
	"diet",
	"digital",
	"direct",
	"directory",
	"discount",
	"discover",
	"dish",
	"diy",
	"dnp",
	"docs",
	"doctor",
	"dog",
	"domains",
	"dot",
	"download",
	"drive",
	"dtv",
	"dubai",
	"dunlop",
	"dupont",
	"durban",
	"dvag",
	"dvr",
	"earth",
	"eat",
	"eco",
	"edeka",
	"edu",
	"education",
	"email",
	"emerck",
	"energy",
	"engineer",
	"engineering",
	"enterprises",
	"epson",
	"equipment",
	"ericsson",
	"erni",
	"esq",
	"estate",
	"etisalat",
	"eurovision",
	"eus",
	"events",
	"exchange",
	"expert",
	"exposed",
	"express",
	"extraspace",
	"fage",
	"fail",
	"fairwinds",
	"faith",
	"family",
	"fan",
	"fans",
	"farm",
	"farmers",
	"fashion",
	"fast",
	"fedex",
	"feedback",
	"ferrari",
	"ferrero",
	"fiat",
	"fidelity",
	"fido",
	"film",
	"final",
	"finance",
	"financial",
	"fire",
	"firestone",
	"firmdale",
	"fish",
	"fishing",
	"fit",
	"fitness",
	"flickr",
	"flights",
	"flir",
	"florist",
	"flowers",
	"fly",
	"foo",
	"food",
	"foodnetwork",
	"football",
	"ford",
	"forex",
	"forsale",
	"forum",
	"foundation",
	"fox",
	"free",
	"fresenius",
	"frl",
	"frogans",
	"frontdoor",
	"frontier",
	"ftr",
	"fujitsu",
	"fun",
	"fund",
	"furniture",
	"futbol",
	"fyi",
	"gal",
	"gallery",
	"gallo",
	"gallup",
	"game",
	"games",
	"gap",
	"garden",
	"gay",
	"gbiz",
	"gdn",
	"gea",
	"gent",
	"genting",
	"george",
	"ggee",
	"gift",
	"gifts",
	"gives",
	"giving",
	"glass",
	"gle",
	"global",
	"globo",
	"gmail",
	"gmbh",
	"gmo",
	"gmx",
	"godaddy",
	"gold",
	"goldpoint",
	"golf",
	"goo",
	"goodyear",
	"goog",
	"google",
	"gop",
	"got",
	"gov",
	"grainger",
	"graphics",
	"gratis",
	"green",
	"gripe",
	"grocery",
	"group",
	"guardian",
	"gucci",
	"guge",
	"guide",
	"guitars",
	"guru",
	"hair",
	"hamburg",
	"hangout",
	"haus",
	"hbo",
	"hdfc",
	"hdfcbank",
	"health",
	"healthcare",
	"help",
	"helsinki",
	"here",
	"hermes",
	"hgtv",
	"hiphop",
	"hisamitsu",
	"hitachi",
	"hiv",
	"hkt",
	"hockey",
	"holdings",
	"holiday",
	"homedepot",
	"homegoods",
	"homes",
	"homesense",
	"honda",
	"horse",
	"hospital",
	"host",
	"hosting",
	"hot",
	"hoteles",
	"hotels",
	"hotmail",
	"house",
	"how",
	"hsbc",
	"hughes",
	"hyatt",
	"hyundai",
	"ibm",
	"icbc",
	"ice",
	"icu",
	"ieee",
	"ifm",
	"ikano",
	"imamat",
	"imdb",
	"immo",
	"immobilien",
	"inc",
	"industries",
	"infiniti",
	"info",
	"ing",
	"ink",
	"institute",
	"insurance",
	"insure",
	"int",
	"international",
	"intuit",
	"investments",
	"ipiranga",
	"irish",
	"ismaili",
	"ist",
	"istanbul",
	"itau",
	"itv",
	"jaguar",
	"java",
	"jcb",
	"jeep",
	"jetzt",
	"jewelry",
	"jio",
	"jll",
	"jmp",
	"jnj",
	"jobs",
	"joburg",
	"jot",
	"joy",
	"jpmorgan",
	"jprs",
	"juegos",
	"juniper",
	"kaufen",
	"kddi",
	"kerryhotels",
	"kerrylogistics",
	"kerryproperties",
	"kfh",
	"kia",
	"kids",
	"kim",
	"kinder",
	"kindle",
	"kitchen",
	"kiwi",
	"koeln",
	"komatsu",
	"kosher",
	"kpmg",
	"kpn",
	"krd",
	"kred",
	"kuokgroup",
	"kyoto",
	"lacaixa",
	"lamborghini",
	"lamer",
	"lancaster",
	"lancia",
	"land",
	"landrover",
	"lanxess",
	"lasalle",
	"lat",
	"latino",
	"latrobe",
	"law",
	"lawyer",
	"lds",
	"lease",
	"leclerc",
	"lefrak",
	"legal",
	"lego",
	"lexus",
	"lgbt",
	"lidl",
	"life",
	"lifeinsurance",
	"lifestyle",
	"lighting",
	"like",
	"lilly",
	"limited",
	"limo",
	"lincoln",
	"linde",
	"link",
	"lipsy",
	"live",
	"living",
	"llc",
	"llp",
	"loan",
	"loans",
	"locker",
	"locus",
	"lol",
	"london",
	"lotte",
	"lotto",
	"love",
	"lpl",
	"lplfinancial",
	"ltd",
	"ltda",
	"lundbeck",
	"luxe",
	"luxury",
	"macys",
	"madrid",
	"maif",
	"maison",
	"makeup",
	"man",
	"management",
	"mango",
	"map",
	"market",
	"marketing",
	"markets",
	"marriott",
	"marshalls",
	"maserati",
	"mattel",
	"mba",
	"mckinsey",
	"med",
	"media",
	"meet",
	"melbourne",
	"meme",
	"memorial",
	"men",
	"menu",
	"merckmsd",
	"miami",
	"microsoft",
	"mil",
	"mini",
	"mint",
	"mit",
	"mitsubishi",
	"mlb",
	"mls",
	"mma",
	"mobi",
	"mobile",
	"moda",
	"moe",
	"moi",
	"mom",
	"monash",
	"money",
	"monster",
	"mormon",
	"mortgage",
	"moscow",
	"moto",
	"motorcycles",
	"mov",
	"movie",
	"msd",
	"mtn",
	"mtr",
	"museum",
	"music",
	"mutual",
	"nab",
	"nagoya",
	"name",
	"natura",
	"navy",
	"nba",
	"nec",
	"net",
	"netbank",
	"netflix",
	"network",
	"neustar",
	"new",
	"news",
	"next",
	"nextdirect",
	"nexus",
	"nfl",
	"ngo",
	"nhk",
	"nico",
	"nike",
	"nikon",
	"ninja",
	"nissan",
	"nissay",
	"nokia",
	"northwesternmutual",
	"norton",
	"now",
	"nowruz",
	"nowtv",
	"nra",
	"nrw",
	"ntt",
	"nyc",
	"obi",
	"observer",
	"office",
	"okinawa",
	"olayan",
	"olayangroup",
	"oldnavy",
	"ollo",
	"omega",
	"one",
	"ong",
	"onion",
	"onl",
	"online",
	"ooo",
	"open",
	"oracle",
	"orange",
	"org",
	"organic",
	"origins",
	"osaka",
	"otsuka",
	"ott",
	"ovh",
	"page",
	"panasonic",
	"paris",
	"pars",
	"partners",
	"parts",
	"party",
	"passagens",
	"pay",
	"pccw",
	"pet",
	"pfizer",
	"pharmacy",
	"phd",
	"philips",
	"phone",
	"photo",
	"photography",
	"photos",
	"physio",
	"pics",
	"pictet",
	"pictures",
	"pid",
	"pin",
	"ping",
	"pink",
	"pioneer",
	"pizza",
	"place",
	"play",
	"playstation",
	"plumbing",
	"plus",
	"pnc",
	"pohl",
	"poker",
	"politie",
	"porn",
	"post",
	"pramerica",
	"praxi",
	"press",
	"prime",
	"pro",
	"prod",
	"productions",
	"prof",
	"progressive",
	"promo",
	"properties",
	"property",
	"protection",
	"pru",
	"prudential",
	"pub",
	"pwc",
	"qpon",
	"quebec",
	"quest",
	"racing",
	"radio",
	"read",
	"realestate",
	"realtor",
	"realty",
	"recipes",
	"red",
	"redstone",
	"redumbrella",
	"rehab",
	"reise",
	"reisen",
	"reit",
	"reliance",
	"ren",
	"rent",
	"rentals",
	"repair",
	"report",
	"republican",
	"rest",
	"restaurant",
	"review",
	"reviews",
	"rexroth",
	"rich",
	"richardli",
	"ricoh",
	"ril",
	"rio",
	"rip",
	"rocher",
	"rocks",
	"rodeo",
	"rogers",
	"room",
	"rsvp",
	"rugby",
	"ruhr",
	"run",
	"rwe",
	"ryukyu",
	"saarland",
	"safe",
	"safety",
	"sakura",
	"sale",
	"salon",
	"samsclub",
	"samsung",
	"sandvik",
	"sandvikcoromant",
	"sanofi",
	"sap",
	"sarl",
	"sas",
	"save",
	"saxo",
	"sbi",
	"sbs",
	"sca",
	"scb",
	"schaeffler",
	"schmidt",
	"scholarships",
	"school",
	"schule",
	"schwarz",
	"science",
	"scot",
	"search",
	"seat",
	"secure",
	"security",
	"seek",
	"select",
	"sener",
	"services",
	"seven",
	"sew",
	"sex",
	"sexy",
	"sfr",
	"shangrila",
	"sharp",
	"shaw",
	"shell",
	"shia",
	"shiksha",
	"shoes",
	"shop",
	"shopping",
	"shouji",
	"show",
	"showtime",
	"silk",
	"sina",
	"singles",
	"site",
	"ski",
	"skin",
	"sky",
	"skype",
	"sling",
	"smart",
	"smile",
	"sncf",
	"soccer",
	"social",
	"softbank",
	"software",
	"sohu",
	"solar",
	"solutions",
	"song",
	"sony",
	"soy",
	"spa",
	"space",
	"sport",
	"spot",
	"srl",
	"stada",
	"staples",
	"star",
	"statebank",
	"statefarm",
	"stc",
	"stcgroup",
	"stockholm",
	"storage",
	"store",
	"stream",
	"studio",
	"study",
	"style",
	"sucks",
	"supplies",
	"supply",
	"support",
	"surf",
	"surgery",
	"suzuki",
	"swatch",
	"swiss",
	"sydney",
	"systems",
	"tab",
	"taipei",
	"talk",
	"taobao",
	"target",
	"tatamotors",
	"tatar",
	"tattoo",
	"tax",
	"taxi",
	"tci",
	"tdk",
	"team",
	"tech",
	"technology",
	"tel",
	"temasek",
	"tennis",
	"teva",
	"thd",
	"theater",
	"theatre",
	"tiaa",
	"tickets",
	"tienda",
	"tiffany",
	"tips",
	"tires",
	"tirol",
	"tjmaxx",
	"tjx",
	"tkmaxx",
	"tmall",
	"today",
	"tokyo",
	"tools",
	"top",
	"toray",
	"toshiba",
	"total",
	"tours",
	"town",
	"toyota",
	"toys",
	"trade",
	"trading",
	"training",
	"travel",
	"travelchannel",
	"travelers",
	"travelersinsurance",
	"trust",
	"trv",
	"tube",
	"tui",
	"tunes",
	"tushu",
	"tvs",
	"ubank",
	"ubs",
	"unicom",
	"university",
	"uno",
	"uol",
	"ups",
	"vacations",
	"vana",
	"vanguard",
	"vegas",
	"ventures",
	"verisign",
	"versicherung",
	"vet",
	"viajes",
	"video",
	"vig",
	"viking",
	"villas",
	"vin",
	"vip",
	"virgin",
	"visa",
	"vision",
	"viva",
	"vivo",
	"vlaanderen",
	"vodka",
	"volkswagen",
	"volvo",
	"vote",
	"voting",
	"voto",
	"voyage",
	"vuelos",
	"wales",
	"walmart",
	"walter",
	"wang",
	"wanggou",
	"watch",
	"watches",
	"weather",
	"weatherchannel",
	"webcam",
	"weber",
	"website",
	"wedding",
	"weibo",
	"weir",
	"whoswho",
	"wien",
	"wiki",
	"williamhill",
	"win",
	"windows",
	"wine",
	"winners",
	"wme",
	"wolterskluwer",
	"woodside",
	"work",
	"works",
	"world",
	"wow",
	"wtc",
	"wtf",
	"xbox",
	"xerox",
	"xfinity",
	"xihuan",
	"xin",
	"xn--11b4c3d", // कॉम
	"xn--1ck2e1b", // セール
	"xn--1qqw23a", // 佛山
	"xn--30rr7y", // 慈善
	"xn--3bst00m", // 集团
	"xn--3ds443g", // 在线
	"xn--3pxu8k", // 点看
	"xn--42c2d9a", // คอม
	"xn--45q11c", // 八卦
	"xn--4gbrim", // موقع
	"xn--55qw42g", // 公益
	"xn--55qx5d", // 公司
	"xn--5su34j936bgsg", // 香格里拉
	"xn--5tzm5g", // 网站
	"xn--6frz82g", // 移动
	"xn--6qq986b3xl", // 我爱你
	"xn--80adxhks", // москва
	"xn--80aqecdr1a", // католик
	"xn--80asehdb", // онлайн
	"xn--80aswg", // сайт
	"xn--8y0a063a", // 联通
	"xn--9dbq2a", // קום
	"xn--9et52u", // 时尚
	"xn--9krt00a", // 微博
	"xn--b4w605ferd", // 淡马锡
	"xn--bck1b9a5dre4c", // ファッション
	"xn--c1avg", // орг
	"xn--c2br7g", // नेट
	"xn--cck2b3b", // ストア
	"xn--cckwcxetd", // アマゾン
	"xn--cg4bki", // 삼성
	"xn--czr694b", // 商标
	"xn--czrs0t", // 商店
	"xn--czru2d", // 商城
	"xn--d1acj3b", // дети
	"xn--eckvdtc9d", // ポイント
	"xn--efvy88h", // 新闻
	"xn--fct429k", // 家電
	"xn--fhbei", // كوم
	"xn--fiq228c5hs", // 中文网
	"xn--fiq64b", // 中信
	"xn--fjq720a", // 娱乐
	"xn--flw351e", // 谷歌
	"xn--fzys8d69uvgm", // 電訊盈科
	"xn--g2xx48c", // 购物
	"xn--gckr3f0f", // クラウド
	"xn--gk3at1e", // 通販
	"xn--hxt814e", // 网店
	"xn--i1b6b1a6a2e", // संगठन
	"xn--imr513n", // 餐厅
	"xn--io0a7i", // 网络
	"xn--j1aef", // ком
	"xn--jlq480n2rg", // 亚马逊
	"xn--jvr189m", // 食品
	"xn--kcrx77d1x4a", // 飞利浦
	"xn--kput3i", // 手机
	"xn--mgba3a3ejt", // ارامكو
	"xn--mgba7c0bbn0a", // العليان
	"xn--mgbaakc7dvf", // اتصالات
	"xn--mgbab2bd", // بازار
	"xn--mgbca7dzdo", // ابوظبي
	"xn--mgbi4ecexp", // كاثوليك
	"xn--mgbt3dhd", // همراه
	"xn--mk1bu44c", // 닷컴
	"xn--mxtq1m", // 政府
	"xn--ngbc5azd", // شبكة
	"xn--ngbe9e0a", // بيتك
	"xn--ngbrx", // عرب
	"xn--nqv7f", // 机构
	"xn--nqv7fs00ema", // 组织机构
	"xn--nyqy26a", // 健康
	"xn--otu796d", // 招聘
	"xn--p1acf", // рус
	"xn--pssy2u", // 大拿
	"xn--q9jyb4c", // みんな
	"xn--qcka1pmc", // グーグル
	"xn--rhqv96g", // 世界
	"xn--rovu88b", // 書籍
	"xn--ses554g", // 网址
	"xn--t60b56a", // 닷넷
	"xn--tckwe", // コム
	"xn--tiq49xqyj", // 天主教
	"xn--unup4y", // 游戏
	"xn--vermgensberater-ctb", // vermögensberater
	"xn--vermgensberatung-pwb", // vermögensberatung
	"xn--vhquv", // 企业
	"xn--vuq861b", // 信息
	"xn--w4r85el8fhu5dnra", // 嘉里大酒店
	"xn--w4rs40l", // 嘉里
	"xn--xhq521b", // 广东
	"xn--zfr164b", // 政务
	"xxx",
	"xyz",
	"yachts",
	"yahoo",
	"yamaxun",
	"yandex",
	"yodobashi",
	"yoga",
	"yokohama",
	"you",
	"youtube",
	"yun",
	"zappos",
	"zara",
	"zero",
	"zip",
	"zone",
	"zuerich",
}

// countryCodeTLDs holds the country-code top-level domains, including IDN ccTLDs.
var countryCodeTLDs = []string{
	"ac",
	"ad",
	"ae",
	"af",
	"ag",
	"ai",
	"al",
	"am",
	"ao",
	"aq",
	"ar",
	"as",
	"at",
	"au",
	"aw",
	"ax",
	"az",
	"ba",
	"bb",
	"be",
	"bf",
	"bg",
	"bh",
	"bi",
	"bj",
	"bm",
	"bn",
	"bo",
	"br",
	"bs",
	"bt",
	"bv",
	"bw",
	"by",
	"bz",
	"ca",
	"cc",
	"cd",
	"cf",
	"cg",
	"ch",
	"ci",
	"cl",
	"cm",
	"cn",
	"co",
	"cr",
	"cu",
	"cv",
	"cw",
	"cx",
	"cy",
	"cz",
	"de",
	"dj",
	"dk",
	"dm",
	"do",
	"dz",
	"ec",
	"ee",
	"eg",
	"es",
	"et",
	"eu",
	"fi",
	"fj",
	"fm",
	"fo",
	"fr",
	"ga",
	"gb",
	"gd",
	"ge",
	"gf",
	"gg",
	"gh",
	"gi",
	"gl",
	"gm",
	"gn",
	"gp",
	"gq",
	"gr",
	"gs",
	"gt",
	"gu",
	"gw",
	"gy",
	"hk",
	"hm",
	"hn",
	"hr",
	"ht",
	"hu",
	"id",
	"ie",
	"il",
	"im",
	"in",
	"io",
	"iq",
	"ir",
	"is",
	"it",
	"je",
	"jo",
	"jp",
	"ke",
	"kg",
	"ki",
	"km",
	"kn",
	"kp",
	"kr",
	"kw",
	"ky",
	"kz",
	"la",
	"lb",
	"lc",
	"li",
	"lk",
	"lr",
	"ls",
	"lt",
	"lu",
	"lv",
	"ly",
	"ma",
	"mc",
	"md",
	"me",
	"mg",
	"mh",
	"mk",
	"ml",
	"mn",
	"mo",
	"mp",
	"mq",
	"mr",
	"ms",
	"mt",
	"mu",
	"mv",
	"mw",
	"mx",
	"my",
	"mz",
	"na",
	"nc",
	"ne",
	"nf",
	"ng",
	"ni",
	"nl",
	"no",
	"nr",
	"nu",
	"nz",
	"om",
	"pa",
	"pe",
	"pf",
	"ph",
	"pk",
	"pl",
	"pm",
	"pn",
	"pr",
	"ps",
	"pt",
	"pw",
	"py",
	"qa",
	"re",
	"ro",
	"rs",
	"ru",
	"rw",
	"sa",
	"sb",
	"sc",
	"sd",
	"se",
	"sg",
	"sh",
	"si",
	"sj",
	"sk",
	"sl",
	"sm",
	"sn",
	"so",
	"sr",
	"ss",
	"st",
	"su",
	"sv",
	"sx",
	"sy",
	"sz",
	"tc",
	"td",
	"tf",
	"tg",
	"th",
	"tj",
	"tk",
	"tl",
	"tm",
	"tn",
	"to",
	"tr",
	"tt",
	"tv",
	"tw",
	"tz",
	"ua",
	"ug",
	"uk",
	"us",
	"uy",
	"uz",
	"va",
	"vc",
	"ve",
	"vg",
	"vi",
	"vn",
	"vu",
	"wf",
	"ws",
	"xn--2scrj9c", // ಭಾರತ
	"xn--3e0b707e", // 한국
	"xn--3hcrj9c", // ଭାରତ
	"xn--45br5cyl", // ভাৰত
	"xn--45brj9c", // ভারত
	"xn--4dbrk0ce", // ישראל
	"xn--54b7fta0cc", // বাংলা
	"xn--80ao21a", // қаз
	"xn--90a3ac", // срб
	"xn--90ae", // бг
	"xn--90ais", // бел
	"xn--clchc0ea0b2g2a9gcd", // சிங்கப்பூர்
	"xn--d1alf", // мкд
	"xn--e1a4c", // ею
	"xn--fiqs8s", // 中国
	"xn--fiqz9s", // 中國
	"xn--fpcrj9c3d", // భారత్
	"xn--fzc2c9e2c", // ලංකා
	"xn--gecrj9c", // ભારત
	"xn--h2breg3eve", // भारतम्
	"xn--h2brj9c", // भारत
	"xn--h2brj9c8c", // भारोत
	"xn--j1amh", // укр
	"xn--j6w193g", // 香港
	"xn--kprw13d", // 台湾
	"xn--kpry57d", // 台灣
	"xn--l1acc", // мон
	"xn--lgbbat1ad8j", // الجزائر
	"xn--mgb2ddes", // اليمن
	"xn--mgb9awbf", // عمان
	"xn--mgba3a4f16a", // ایران
	"xn--mgba3a4fra", // ايران
	"xn--mgbaam7a8h", // امارات
	"xn--mgbah1a3hjkrd", // موريتانيا
	"xn--mgbai9a5eva00b", // پاكستان
	"xn--mgbai9azgqp6j", // پاکستان
	"xn--mgbayh7gpa", // الاردن
	"xn--mgbbh1a", // بارت
	"xn--mgbbh1a71e", // بھارت
	"xn--mgbc0a9azcg", // المغرب
	"xn--mgbcpq6gpa1a", // البحرين
	"xn--mgberp4a5d4a87g", // السعودیة
	"xn--mgberp4a5d4ar", // السعودية
	"xn--mgbgu82a", // ڀارت
	"xn--mgbpl2fh", // سودان
	"xn--mgbqly7c0a67fbc", // السعودیۃ
	"xn--mgbqly7cvafr", // السعوديه
	"xn--mgbtf8fl", // سوريا
	"xn--mgbtx2b", // عراق
	"xn--mgbx4cd0ab", // مليسيا
	"xn--mix082f", // 澳门
	"xn--mix891f", // 澳門
	"xn--nnx388a", // 臺灣
	"xn--node", // გე
	"xn--o3cw4h", // ไทย
	"xn--ogbpf8fl", // سورية
	"xn--p1ai", // рф
	"xn--pgbs0dh", // تونس
	"xn--q7ce6a", // ລາວ
	"xn--qxa6a", // ευ
	"xn--qxam", // ελ
	"xn--rvc1e0am3e", // ഭാരതം
	"xn--s9brj9c", // ਭਾਰਤ
	"xn--wgbh1c", // مصر
	"xn--wgbl6a", // قطر
	"xn--xkc2al3hye2a", // இலங்கை
	"xn--xkc2dl3a5ee0h", // இந்தியா
	"xn--y9a3aq", // հայ
	"xn--yfro4i67o", // 新加坡
	"xn--ygbi2ammx", // فلسطين
	"ye",
	"yt",
	"zm",
	"zw",
}

// localTLDs holds non-public suffixes accepted only when local names are allowed.
var localTLDs = []string{
	"localdomain", // Also widely used as localhost.localdomain
	"localhost", // RFC 2606 defined
}
