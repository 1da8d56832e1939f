package curriculum

// LetterAnimal is the mnemonic animal shown with a letter card.
type LetterAnimal struct {
	Animal string `json:"animal"`
	Emoji  string `json:"emoji"`
}

// LetterAnimals maps each letter to its mnemonic.
var LetterAnimals = map[string]LetterAnimal{
	"А": {"аист", "🦢"},
	"Б": {"белка", "🐿️"},
	"В": {"ворона", "🐦"},
	"Г": {"гусь", "🦢"},
	"Д": {"дом", "🏠"},
	"Е": {"ель", "🌲"},
	"Ё": {"ёлка", "🎄"},
	"Ж": {"жираф", "🦒"},
	"З": {"змея", "🐍"},
	"И": {"индюк", "🦃"},
	"К": {"кот", "🐱"},
	"Л": {"лев", "🦁"},
	"М": {"мамонт", "🦣"},
	"Н": {"носорог", "🦏"},
	"О": {"оса", "🐝"},
	"П": {"пингвин", "🐧"},
	"Р": {"рак", "🦀"},
	"С": {"стегозавр", "🦕"},
	"Т": {"тигр", "🐯"},
	"У": {"утка", "🦆"},
	"Ф": {"филин", "🦉"},
	"Х": {"хомяк", "🐹"},
	"Ц": {"цапля", "🦩"},
	"Ч": {"червяк", "🪱"},
	"Ш": {"шмель", "🐝"},
	"Щ": {"щука", "🐟"},
	"Ы": {"рыба", "🐟"},
	"Э": {"эму", "🦚"},
	"Ю": {"юла", "🪀"},
	"Я": {"ящерица", "🦎"},
}

// StressMarks maps curriculum words to their accented spelling, used
// by the stress-marking game.
var StressMarks = map[string]string{
	"МАМА":   "МА́МА",
	"ПАПА":   "ПА́ПА",
	"ЛАМА":   "ЛА́МА",
	"МАЛИНА": "МАЛИ́НА",
	"ПАУК":   "ПАУ́К",
	"КОТ":    "КОТ",
	"СОМ":    "СОМ",
	"НОС":    "НОС",
	"ДОМ":    "ДОМ",
	"РАК":    "РАК",
	"ЗУБ":    "ЗУБ",
	"ВОЛК":   "ВОЛК",
	"МОСТ":   "МОСТ",
	"КУСТ":   "КУСТ",
	"СЛОН":   "СЛОН",
	"ТУТ":    "ТУТ",
}

// StressMarkFor returns the accented spelling for a word, or the word
// itself when no mark is recorded.
func StressMarkFor(word string) string {
	if marked, ok := StressMarks[word]; ok {
		return marked
	}
	return word
}
