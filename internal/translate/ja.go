package translate

// Japanese glosses for the bundled sight-word lists. Words without an entry
// resolve to Placeholder; the table is intentionally partial.
var ja = map[string]string{
	"a":        "ひとつの",
	"about":    "〜について",
	"after":    "〜のあとで",
	"again":    "もういちど",
	"all":      "ぜんぶ",
	"always":   "いつも",
	"am":       "です（わたしは）",
	"an":       "ひとつの",
	"and":      "そして",
	"any":      "どれでも",
	"are":      "です（あなたたちは）",
	"around":   "まわりに",
	"as":       "〜として",
	"ask":      "たずねる",
	"at":       "〜で",
	"ate":      "たべた",
	"away":     "はなれて",
	"be":       "である",
	"because":  "なぜなら",
	"been":     "ずっと〜だった",
	"before":   "まえに",
	"best":     "いちばんよい",
	"better":   "もっとよい",
	"big":      "おおきい",
	"black":    "くろ",
	"blue":     "あお",
	"both":     "りょうほう",
	"bring":    "もってくる",
	"brown":    "ちゃいろ",
	"but":      "でも",
	"buy":      "かう",
	"by":       "〜のそばに",
	"call":     "よぶ",
	"came":     "きた",
	"can":      "できる",
	"carry":    "はこぶ",
	"clean":    "きれいにする",
	"cold":     "つめたい",
	"come":     "くる",
	"could":    "できた",
	"cut":      "きる",
	"day":      "ひ・いちにち",
	"did":      "した",
	"do":       "する",
	"does":     "する（かれ・かのじょが）",
	"done":     "おわった",
	"don't":    "〜しない",
	"down":     "したへ",
	"draw":     "えをかく",
	"drink":    "のむ",
	"each":     "それぞれ",
	"eat":      "たべる",
	"eight":    "はち（8）",
	"every":    "すべての",
	"fall":     "おちる",
	"far":      "とおい",
	"fast":     "はやい",
	"find":     "みつける",
	"first":    "さいしょ",
	"five":     "ご（5）",
	"fly":      "とぶ",
	"for":      "〜のために",
	"found":    "みつけた",
	"four":     "よん（4）",
	"from":     "〜から",
	"full":     "いっぱいの",
	"funny":    "おもしろい",
	"gave":     "あげた",
	"get":      "てにいれる",
	"give":     "あげる",
	"go":       "いく",
	"goes":     "いく（かれ・かのじょが）",
	"going":    "いくところ",
	"good":     "よい",
	"got":      "てにいれた",
	"green":    "みどり",
	"grow":     "そだつ",
	"had":      "もっていた",
	"has":      "もっている（かれ・かのじょが）",
	"have":     "もっている",
	"he":       "かれは",
	"help":     "たすける",
	"her":      "かのじょの",
	"here":     "ここ",
	"him":      "かれを",
	"his":      "かれの",
	"hold":     "もつ",
	"hot":      "あつい",
	"how":      "どのように",
	"hurt":     "いたい・きずつける",
	"I":        "わたしは",
	"if":       "もし",
	"in":       "〜のなかに",
	"into":     "〜のなかへ",
	"is":       "です",
	"it":       "それ",
	"its":      "それの",
	"jump":     "ジャンプする",
	"just":     "ちょうど",
	"keep":     "とっておく",
	"kind":     "やさしい・しゅるい",
	"know":     "しっている",
	"laugh":    "わらう",
	"let":      "〜させる",
	"light":    "ひかり",
	"like":     "すき",
	"little":   "ちいさい",
	"live":     "すむ",
	"long":     "ながい",
	"look":     "みる",
	"made":     "つくった",
	"make":     "つくる",
	"many":     "たくさんの",
	"may":      "〜してもよい",
	"me":       "わたしを",
	"more":     "もっと",
	"much":     "たくさん",
	"must":     "〜しなければならない",
	"my":       "わたしの",
	"myself":   "わたしじしん",
	"never":    "けっして〜ない",
	"new":      "あたらしい",
	"no":       "いいえ",
	"not":      "〜ではない",
	"now":      "いま",
	"number":   "かず",
	"of":       "〜の",
	"off":      "はなれて・オフ",
	"oil":      "あぶら",
	"old":      "ふるい",
	"on":       "〜のうえに",
	"once":     "いちど",
	"one":      "いち（1）",
	"only":     "〜だけ",
	"open":     "あける",
	"or":       "または",
	"other":    "ほかの",
	"our":      "わたしたちの",
	"out":      "そとへ",
	"over":     "〜のうえを",
	"own":      "じぶんの",
	"part":     "ぶぶん",
	"people":   "ひとびと",
	"pick":     "えらぶ・つむ",
	"play":     "あそぶ",
	"please":   "おねがいします",
	"pretty":   "かわいい",
	"pull":     "ひっぱる",
	"put":      "おく",
	"ran":      "はしった",
	"read":     "よむ",
	"red":      "あか",
	"ride":     "のる",
	"right":    "ただしい・みぎ",
	"round":    "まるい",
	"run":      "はしる",
	"said":     "いった",
	"saw":      "みた",
	"say":      "いう",
	"see":      "みえる",
	"seven":    "なな（7）",
	"shall":    "〜しましょう",
	"she":      "かのじょは",
	"show":     "みせる",
	"sing":     "うたう",
	"sit":      "すわる",
	"six":      "ろく（6）",
	"sleep":    "ねむる",
	"small":    "ちいさい",
	"so":       "だから",
	"some":     "いくつかの",
	"soon":     "すぐに",
	"start":    "はじめる",
	"stop":     "とまる",
	"take":     "とる",
	"tell":     "つたえる",
	"ten":      "じゅう（10）",
	"than":     "〜よりも",
	"thank":    "ありがとう",
	"that":     "あれ",
	"the":      "その",
	"their":    "かれらの",
	"them":     "かれらを",
	"then":     "それから",
	"there":    "そこ",
	"these":    "これら",
	"they":     "かれらは",
	"think":    "かんがえる",
	"this":     "これ",
	"those":    "それら",
	"three":    "さん（3）",
	"time":     "じかん",
	"to":       "〜へ",
	"today":    "きょう",
	"together": "いっしょに",
	"too":      "〜も",
	"try":      "やってみる",
	"two":      "に（2）",
	"under":    "〜のしたに",
	"up":       "うえへ",
	"upon":     "〜のうえに",
	"us":       "わたしたちを",
	"use":      "つかう",
	"very":     "とても",
	"walk":     "あるく",
	"want":     "ほしい",
	"warm":     "あたたかい",
	"was":      "だった",
	"wash":     "あらう",
	"water":    "みず",
	"way":      "みち・ほうほう",
	"we":       "わたしたちは",
	"well":     "じょうずに",
	"went":     "いった",
	"were":     "だった（ふくすう）",
	"what":     "なに",
	"when":     "いつ",
	"where":    "どこ",
	"which":    "どちら",
	"white":    "しろ",
	"who":      "だれ",
	"why":      "なぜ",
	"will":     "〜するだろう",
	"wish":     "ねがう",
	"with":     "〜といっしょに",
	"word":     "ことば",
	"work":     "はたらく",
	"would":    "〜するだろう",
	"write":    "かく",
	"yellow":   "きいろ",
	"yes":      "はい",
	"you":      "あなたは",
	"your":     "あなたの",
}
