package content

import "github.com/example/nihongo/pkg/models"

// hiragana maps each basic hiragana character to its romaji reading.
var hiragana = map[string]string{
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"か": "ka", "き": "ki", "く": "ku", "け": "ke", "こ": "ko",
	"さ": "sa", "し": "shi", "す": "su", "せ": "se", "そ": "so",
	"た": "ta", "ち": "chi", "つ": "tsu", "て": "te", "と": "to",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ひ": "hi", "ふ": "fu", "へ": "he", "ほ": "ho",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "を": "wo", "ん": "n",
}

// katakana maps each basic katakana character to its romaji reading.
var katakana = map[string]string{
	"ア": "a", "イ": "i", "ウ": "u", "エ": "e", "オ": "o",
	"カ": "ka", "キ": "ki", "ク": "ku", "ケ": "ke", "コ": "ko",
	"サ": "sa", "シ": "shi", "ス": "su", "セ": "se", "ソ": "so",
	"タ": "ta", "チ": "chi", "ツ": "tsu", "テ": "te", "ト": "to",
	"ナ": "na", "ニ": "ni", "ヌ": "nu", "ネ": "ne", "ノ": "no",
	"ハ": "ha", "ヒ": "hi", "フ": "fu", "ヘ": "he", "ホ": "ho",
	"マ": "ma", "ミ": "mi", "ム": "mu", "メ": "me", "モ": "mo",
	"ヤ": "ya", "ユ": "yu", "ヨ": "yo",
	"ラ": "ra", "リ": "ri", "ル": "ru", "レ": "re", "ロ": "ro",
	"ワ": "wa", "ヲ": "wo", "ン": "n",
}

// vocabulary is the built-in JLPT N5 vocabulary set.
var vocabulary = []models.Item{
	{Key: "こんにちは", Romaji: "konnichiwa", Meaning: "hello", JLPT: "N5",
		Example: "こんにちは、げんきですか。", ExampleRomaji: "Konnichiwa, genki desu ka.", ExampleEnglish: "Hello, how are you?"},
	{Key: "おはよう", Romaji: "ohayou", Meaning: "good morning", JLPT: "N5",
		Example: "おはよう、よくねた。", ExampleRomaji: "Ohayou, yoku neta.", ExampleEnglish: "Good morning, I slept well."},
	{Key: "ありがとう", Romaji: "arigatou", Meaning: "thank you", JLPT: "N5",
		Example: "ありがとう、たすかった。", ExampleRomaji: "Arigatou, tasukatta.", ExampleEnglish: "Thank you, you helped me."},
	{Key: "すみません", Romaji: "sumimasen", Meaning: "excuse me", JLPT: "N5",
		Example: "すみません、えきはどこですか。", ExampleRomaji: "Sumimasen, eki wa doko desu ka.", ExampleEnglish: "Excuse me, where is the station?"},
	{Key: "さようなら", Romaji: "sayounara", Meaning: "goodbye", JLPT: "N5",
		Example: "さようなら、ともだち。", ExampleRomaji: "Sayounara, tomodachi.", ExampleEnglish: "Goodbye, friend."},
	{Key: "はい", Romaji: "hai", Meaning: "yes", JLPT: "N5",
		Example: "はい、わかりました。", ExampleRomaji: "Hai, wakarimashita.", ExampleEnglish: "Yes, I understood."},
	{Key: "いいえ", Romaji: "iie", Meaning: "no", JLPT: "N5",
		Example: "いいえ、ちがいます。", ExampleRomaji: "Iie, chigaimasu.", ExampleEnglish: "No, that's wrong."},
	{Key: "いち", Romaji: "ichi", Meaning: "one", JLPT: "N5",
		Example: "いちにんです。", ExampleRomaji: "Ichi nin desu.", ExampleEnglish: "It's one person."},
	{Key: "に", Romaji: "ni", Meaning: "two", JLPT: "N5",
		Example: "にほんください。", ExampleRomaji: "Ni hon kudasai.", ExampleEnglish: "Two bottles please."},
	{Key: "さん", Romaji: "san", Meaning: "three", JLPT: "N5",
		Example: "さんじです。", ExampleRomaji: "San ji desu.", ExampleEnglish: "It's 3 o'clock."},
	{Key: "かぞく", Romaji: "kazoku", Meaning: "family", JLPT: "N5",
		Example: "かぞくがすきです。", ExampleRomaji: "Kazoku ga suki desu.", ExampleEnglish: "I like my family."},
	{Key: "ごはん", Romaji: "gohan", Meaning: "rice/meal", JLPT: "N5",
		Example: "ごはんをたべます。", ExampleRomaji: "Gohan o tabemasu.", ExampleEnglish: "I eat a meal."},
	{Key: "みず", Romaji: "mizu", Meaning: "water", JLPT: "N5",
		Example: "みずをください。", ExampleRomaji: "Mizu o kudasai.", ExampleEnglish: "Water, please."},
	{Key: "おちゃ", Romaji: "ocha", Meaning: "tea", JLPT: "N5",
		Example: "おちゃをのみます。", ExampleRomaji: "Ocha o nomimasu.", ExampleEnglish: "I drink tea."},
	{Key: "さかな", Romaji: "sakana", Meaning: "fish", JLPT: "N5",
		Example: "さかながおいしい。", ExampleRomaji: "Sakana ga oishii.", ExampleEnglish: "The fish is delicious."},
	{Key: "ねこ", Romaji: "neko", Meaning: "cat", JLPT: "N5",
		Example: "ねこがいます。", ExampleRomaji: "Neko ga imasu.", ExampleEnglish: "There is a cat."},
	{Key: "いぬ", Romaji: "inu", Meaning: "dog", JLPT: "N5",
		Example: "いぬとあそびます。", ExampleRomaji: "Inu to asobimasu.", ExampleEnglish: "I play with the dog."},
	{Key: "がっこう", Romaji: "gakkou", Meaning: "school", JLPT: "N5",
		Example: "がっこうへいきます。", ExampleRomaji: "Gakkou e ikimasu.", ExampleEnglish: "I go to school."},
	{Key: "せんせい", Romaji: "sensei", Meaning: "teacher", JLPT: "N5",
		Example: "せんせいはやさしい。", ExampleRomaji: "Sensei wa yasashii.", ExampleEnglish: "The teacher is kind."},
	{Key: "ともだち", Romaji: "tomodachi", Meaning: "friend", JLPT: "N5",
		Example: "ともだちとはなします。", ExampleRomaji: "Tomodachi to hanashimasu.", ExampleEnglish: "I talk with my friend."},
}

// grammar is the built-in grammar pattern set.
var grammar = []models.Item{
	{Key: "〜は〜です", Romaji: "wa ... desu", Meaning: "A is B", JLPT: "N5",
		Example: "わたしはがくせいです。", ExampleRomaji: "Watashi wa gakusei desu.", ExampleEnglish: "I am a student."},
	{Key: "〜があります", Romaji: "ga arimasu", Meaning: "there is (inanimate)", JLPT: "N5",
		Example: "つくえのうえにほんがあります。", ExampleRomaji: "Tsukue no ue ni hon ga arimasu.", ExampleEnglish: "There is a book on the desk."},
	{Key: "〜がいます", Romaji: "ga imasu", Meaning: "there is (animate)", JLPT: "N5",
		Example: "にわにねこがいます。", ExampleRomaji: "Niwa ni neko ga imasu.", ExampleEnglish: "There is a cat in the garden."},
	{Key: "〜をください", Romaji: "o kudasai", Meaning: "please give me", JLPT: "N5",
		Example: "みずをください。", ExampleRomaji: "Mizu o kudasai.", ExampleEnglish: "Please give me water."},
	{Key: "〜たいです", Romaji: "tai desu", Meaning: "want to do", JLPT: "N5",
		Example: "すしをたべたいです。", ExampleRomaji: "Sushi o tabetai desu.", ExampleEnglish: "I want to eat sushi."},
	{Key: "〜てもいいですか", Romaji: "te mo ii desu ka", Meaning: "may I", JLPT: "N5",
		Example: "ここにすわってもいいですか。", ExampleRomaji: "Koko ni suwatte mo ii desu ka.", ExampleEnglish: "May I sit here?"},
}

// kanji is the built-in beginner kanji set.
var kanji = []models.Item{
	{Key: "日", Romaji: "nichi/hi", Meaning: "day, sun", JLPT: "N5",
		Example: "日ようびです。", ExampleRomaji: "Nichiyoubi desu.", ExampleEnglish: "It is Sunday."},
	{Key: "月", Romaji: "getsu/tsuki", Meaning: "month, moon", JLPT: "N5",
		Example: "月がきれいです。", ExampleRomaji: "Tsuki ga kirei desu.", ExampleEnglish: "The moon is beautiful."},
	{Key: "火", Romaji: "ka/hi", Meaning: "fire", JLPT: "N5",
		Example: "火ようびです。", ExampleRomaji: "Kayoubi desu.", ExampleEnglish: "It is Tuesday."},
	{Key: "水", Romaji: "sui/mizu", Meaning: "water", JLPT: "N5",
		Example: "水をのみます。", ExampleRomaji: "Mizu o nomimasu.", ExampleEnglish: "I drink water."},
	{Key: "木", Romaji: "moku/ki", Meaning: "tree, wood", JLPT: "N5",
		Example: "木がたかいです。", ExampleRomaji: "Ki ga takai desu.", ExampleEnglish: "The tree is tall."},
	{Key: "金", Romaji: "kin/kane", Meaning: "gold, money", JLPT: "N5",
		Example: "お金があります。", ExampleRomaji: "Okane ga arimasu.", ExampleEnglish: "I have money."},
	{Key: "土", Romaji: "do/tsuchi", Meaning: "earth, soil", JLPT: "N5",
		Example: "土ようびです。", ExampleRomaji: "Doyoubi desu.", ExampleEnglish: "It is Saturday."},
	{Key: "人", Romaji: "jin/hito", Meaning: "person", JLPT: "N5",
		Example: "あの人はだれですか。", ExampleRomaji: "Ano hito wa dare desu ka.", ExampleEnglish: "Who is that person?"},
	{Key: "山", Romaji: "san/yama", Meaning: "mountain", JLPT: "N5",
		Example: "山にのぼります。", ExampleRomaji: "Yama ni noborimasu.", ExampleEnglish: "I climb the mountain."},
	{Key: "川", Romaji: "sen/kawa", Meaning: "river", JLPT: "N5",
		Example: "川でおよぎます。", ExampleRomaji: "Kawa de oyogimasu.", ExampleEnglish: "I swim in the river."},
}
