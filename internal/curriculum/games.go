package curriculum

// GameInfo describes a mini-game identifier: which content fields the
// game consumes, whether its play already walks the day's full reading
// content (so the separate reading phase is redundant), and the spoken
// instruction used when the game starts.
type GameInfo struct {
	NeedsLetters   bool
	NeedsSyllables bool
	NeedsWords     bool
	NeedsSentences bool

	// ReadingHeavy games replace the reading phase entirely.
	ReadingHeavy bool

	Instruction string
}

// defaultGame is used for unknown identifiers so a catalog typo can
// never stall a lesson.
var defaultGame = GameInfo{Instruction: "Начинаем занятие!"}

// games maps every game identifier used in the catalog. The lesson
// flow branches on this table, not on per-game conditionals.
var games = map[string]GameInfo{
	"diagnostic": {NeedsLetters: true, Instruction: "Давай проверим, какие буквы ты уже знаешь!"},

	// week 1: letter recognition
	"roar":  {NeedsLetters: true, Instruction: "Рычи как динозавр, когда услышишь свой звук!"},
	"voice": {NeedsLetters: true, Instruction: "Помоги тираннозавру найти голос — повтори звук!"},
	"catch": {NeedsLetters: true, Instruction: "Лови звук! Нажми на букву, которую услышишь."},
	"find":  {NeedsLetters: true, Instruction: "Найди и покорми динозавра нужной буквой!"},
	"train": {NeedsLetters: true, Instruction: "Посади буквы в вагончики паровозика!"},
	"body":  {NeedsLetters: true, Instruction: "Покажи букву всем телом!"},
	"speed": {NeedsLetters: true, Instruction: "Кто быстрее найдёт букву? Начали!"},

	// week 2: syllables and first words
	"rocket":    {NeedsSyllables: true, Instruction: "Прочитай слог — и ракета взлетит!"},
	"satellite": {NeedsSyllables: true, Instruction: "Спутник передаёт сигналы. Прочитай их!"},
	"decode":    {NeedsWords: true, ReadingHeavy: true, Instruction: "Дешифруй послание с Марса — прочитай слово!"},
	"planets":   {NeedsSyllables: true, NeedsWords: true, Instruction: "Прыгай по планетам — читай слоги!"},
	"spacecat":  {NeedsSyllables: true, NeedsWords: true, Instruction: "Космический кот ждёт. Прочитай слоги!"},
	"signal":    {NeedsSyllables: true, NeedsWords: true, Instruction: "Найди сигнал и прочитай его громко!"},
	"exam":      {NeedsSyllables: true, NeedsWords: true, ReadingHeavy: true, Instruction: "Экзамен капитана! Прочитай всё сам."},

	// weeks 3-4: words
	"lama":      {NeedsSyllables: true, NeedsWords: true, Instruction: "Лама потеряла имя. Собери его из слогов!"},
	"catfish":   {NeedsSyllables: true, NeedsWords: true, Instruction: "Сом спит? Прочитай и узнаешь!"},
	"stress":    {NeedsWords: true, ReadingHeavy: true, Instruction: "Хлопни в ладоши на ударный слог!"},
	"catball":   {NeedsSyllables: true, NeedsWords: true, Instruction: "Кот поймал ком! Прочитай, что получилось."},
	"raspberry": {NeedsWords: true, Instruction: "Собери малину для медведя — по слогу за ягоду!"},
	"spider":    {NeedsSyllables: true, NeedsWords: true, Instruction: "Читаем про паука. Не бойся!"},
	"zoo":       {NeedsWords: true, ReadingHeavy: true, Instruction: "Построй зоопарк из слов!"},
	"lego":      {NeedsSyllables: true, NeedsWords: true, Instruction: "Строим слова из блоков. Бери слог!"},
	"builder":   {NeedsWords: true, ReadingHeavy: true, Instruction: "Мастерская слов открыта. Собирай!"},

	// week 5: sentences
	"sentences": {NeedsSentences: true, ReadingHeavy: true, Instruction: "Читаем предложения. Слово за словом!"},
}

// GameFor returns the table entry for a game identifier, falling back
// to a neutral default for unknown identifiers.
func GameFor(id string) GameInfo {
	if g, ok := games[id]; ok {
		return g
	}
	return defaultGame
}

// KnownGame reports whether the identifier has a table entry.
func KnownGame(id string) bool {
	_, ok := games[id]
	return ok
}
