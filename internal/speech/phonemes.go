package speech

// Phoneme is how a letter is pronounced in isolation, with an example
// word for context.
type Phoneme struct {
	Sound   string
	Example string
}

// phonemes maps uppercase letters to their spoken sound. Letters are
// voiced by sound, not by alphabet name, which is how pre-readers are
// taught. Ъ and Ь are silent.
var phonemes = map[string]Phoneme{
	"А": {"а", "ааа"},
	"Б": {"б", "банан"},
	"В": {"в", "ворон"},
	"Г": {"г", "город"},
	"Д": {"д", "дом"},
	"Е": {"е", "ель"},
	"Ё": {"ё", "ёлка"},
	"Ж": {"ж", "жук"},
	"З": {"з", "зонт"},
	"И": {"и", "игра"},
	"Й": {"й", "йогурт"},
	"К": {"к", "кот"},
	"Л": {"л", "лампа"},
	"М": {"м", "мама"},
	"Н": {"н", "нос"},
	"О": {"о", "осы"},
	"П": {"п", "папа"},
	"Р": {"р", "рак"},
	"С": {"с", "сом"},
	"Т": {"т", "тут"},
	"У": {"у", "утка"},
	"Ф": {"ф", "флаг"},
	"Х": {"х", "хлеб"},
	"Ц": {"ц", "цирк"},
	"Ч": {"ч", "чай"},
	"Ш": {"ш", "шар"},
	"Щ": {"щ", "щука"},
	"Ъ": {"", ""},
	"Ы": {"ы", "рыба"},
	"Ь": {"", ""},
	"Э": {"э", "это"},
	"Ю": {"ю", "юла"},
	"Я": {"я", "ягода"},
}

// PhonemeFor returns the phoneme for a letter and whether one exists.
func PhonemeFor(letter string) (Phoneme, bool) {
	p, ok := phonemes[letter]
	return p, ok
}
