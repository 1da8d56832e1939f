// Package curriculum holds the static 30-day reading curriculum: the
// diagnostic day, three stages of lessons grouped into weeks, and the
// lookup tables the lesson flow is driven by. Everything here is
// immutable after init; lookups are pure.
package curriculum

// LessonDay is one catalog entry. Day 0 is the letter diagnostic,
// days 1..30 are lessons.
type LessonDay struct {
	Day       int      `json:"day"`
	Title     string   `json:"title"`
	Letters   []string `json:"letters,omitempty"`
	Syllables []string `json:"syllables,omitempty"`
	Words     []string `json:"words,omitempty"`
	Sentences []string `json:"sentences,omitempty"`
	NewLetter string   `json:"newLetter,omitempty"`

	Game      string `json:"game"`
	GameTitle string `json:"gameTitle,omitempty"`
	Creative  string `json:"creative,omitempty"`

	IsCheckpoint    bool `json:"isCheckpoint,omitempty"`
	IsStageComplete bool `json:"isStageComplete,omitempty"`
	IsFinal         bool `json:"isFinal,omitempty"`

	Stage      int    `json:"stage"`
	StageTitle string `json:"stageTitle"`
	Week       int    `json:"week"`
	WeekTitle  string `json:"weekTitle"`
}

// week groups consecutive days under one theme.
type week struct {
	number int
	title  string
	days   []LessonDay
}

// stage is a multi-week curriculum phase with its own pass latch in
// the progress model.
type stage struct {
	number int
	title  string
	weeks  []week
}

// DiagnosticLetters are the ten letters tested on day 0 and required
// for the stage 1 pass check.
var DiagnosticLetters = []string{"А", "М", "О", "У", "С", "П", "К", "Т", "Л", "Н"}

var diagnosticDay = LessonDay{
	Day:     0,
	Title:   "Диагностика",
	Letters: DiagnosticLetters,
	Game:    "diagnostic",
}

var stages = []stage{
	{
		number: 1,
		title:  "Закрепление букв",
		weeks: []week{
			{
				number: 1,
				title:  "Динозавры изучают звуки",
				days: []LessonDay{
					{Day: 1, Title: "Звуки А, О, У", Letters: []string{"А", "О", "У"}, Game: "roar", GameTitle: "Рёв динозавра", Creative: "Нарисовать динозавра с буквой А"},
					{Day: 2, Title: "Звуки И, Ы, Э", Letters: []string{"И", "Ы", "Э"}, Game: "voice", GameTitle: "Тираннозавр потерял голос", Creative: "Написать И и Ы пальцем"},
					{Day: 3, Title: "Повтор гласных + М", Letters: []string{"А", "О", "У", "И", "Ы", "Э", "М"}, Game: "catch", GameTitle: "Поймай звук", Creative: "Буква М из пластилина"},
					{Day: 4, Title: "М + С", Letters: []string{"М", "С"}, Game: "find", GameTitle: "Найди буквы", Creative: "Стегозавр с буквой С"},
					{Day: 5, Title: "П, К", Letters: []string{"П", "К"}, Game: "train", GameTitle: "Паровозик", Creative: "Буква К — коготь карнотавра"},
					{Day: 6, Title: "Т, Л", Letters: []string{"Т", "Л"}, Game: "body", GameTitle: "Тело-буква", Creative: "Алфавит динозавра"},
					{Day: 7, Title: "Н + повторение", Letters: []string{"Н", "А", "О", "У", "И", "Ы", "Э", "М", "С", "П", "К", "Т", "Л"}, Game: "speed", GameTitle: "Кто быстрее", Creative: "Итоговая проверка", IsCheckpoint: true},
				},
			},
			{
				number: 2,
				title:  "Космические буквы",
				days: []LessonDay{
					{Day: 8, Title: "Слоги МА, МО, МУ, МЫ, МИ", Syllables: []string{"МА", "МО", "МУ", "МЫ", "МИ"}, Game: "rocket", GameTitle: "Запуск ракеты"},
					{Day: 9, Title: "Слоги СА, СО, СУ, СЫ", Syllables: []string{"СА", "СО", "СУ", "СЫ"}, Game: "satellite", GameTitle: "Сигналы со спутника"},
					{Day: 10, Title: "Первое слово", Words: []string{"МАМА", "САМА"}, Game: "decode", GameTitle: "Дешифруй послание с Марса"},
					{Day: 11, Title: "Слоги ПА, ПО, ПУ", Syllables: []string{"ПА", "ПО", "ПУ"}, Words: []string{"ПАПА"}, Game: "planets", GameTitle: "Планеты — прыгай по слогам"},
					{Day: 12, Title: "Слоги КА, КО, КУ", Syllables: []string{"КА", "КО", "КУ"}, Words: []string{"КОТ"}, Game: "spacecat", GameTitle: "Космический кот"},
					{Day: 13, Title: "Слоги ТА, ТО, ТУ", Syllables: []string{"ТА", "ТО", "ТУ"}, Words: []string{"ТУТ"}, Game: "signal", GameTitle: "Сигнал найден — кричи ТУТ!"},
					{Day: 14, Title: "Итог этапа 1", Syllables: []string{"МА", "МО", "МУ"}, Words: []string{"МАМА", "ПАПА", "КОТ", "ТУТ"}, Game: "exam", GameTitle: "Экзамен капитана", IsCheckpoint: true, IsStageComplete: true},
				},
			},
		},
	},
	{
		number: 2,
		title:  "Слоги → слова",
		weeks: []week{
			{
				number: 3,
				title:  "Животные и насекомые",
				days: []LessonDay{
					{Day: 15, Title: "Слоги ЛА, ЛО, ЛУ", Syllables: []string{"ЛА", "ЛО", "ЛУ"}, Words: []string{"ЛАК", "ЛОМ", "ЛАМА"}, Game: "lama", GameTitle: "Лама потеряла имя"},
					{Day: 16, Title: "Слоги НА, НО, НУ", Syllables: []string{"НА", "НО", "НУ"}, Words: []string{"НОС", "НАМ", "СОН"}, Game: "catfish", GameTitle: "Сом спит?"},
					{Day: 17, Title: "Повтор + ударение", Words: []string{"ЛАМА", "МАМА", "ПАПА"}, Game: "stress", GameTitle: "Хлопок на ударный слог"},
					{Day: 18, Title: "Слоги КА, КО", Syllables: []string{"КА", "КО"}, Words: []string{"КОТ", "КОМ", "КАП"}, Game: "catball", GameTitle: "Кот поймал ком"},
					{Day: 19, Title: "3-сложные слова", Words: []string{"МА-ЛИ-НА"}, Game: "raspberry", GameTitle: "Малина для медведя"},
					{Day: 20, Title: "Слоги ПА, ПО, ПУ", Syllables: []string{"ПА", "ПО", "ПУ"}, Words: []string{"ПАУК"}, Game: "spider", GameTitle: "Читаем про паука"},
					{Day: 21, Title: "Итог недели", Words: []string{"МАМА", "ПАПА", "КОТ", "СОМ", "НОС", "ЛАМА"}, Game: "zoo", GameTitle: "Зоопарк из слов", IsCheckpoint: true},
				},
			},
			{
				number: 4,
				title:  "Lego-стройка слов",
				days: []LessonDay{
					{Day: 22, Title: "Буква В", NewLetter: "В", Syllables: []string{"ВА", "ВО", "ВУ"}, Words: []string{"ВОЛК"}, Game: "lego", GameTitle: "Строим слова из блоков"},
					{Day: 23, Title: "Буква З", NewLetter: "З", Syllables: []string{"ЗА", "ЗО", "ЗУ"}, Words: []string{"ЗУБ"}, Game: "lego", GameTitle: "Строим слова из блоков"},
					{Day: 24, Title: "Буква Д", NewLetter: "Д", Syllables: []string{"ДА", "ДО", "ДУ"}, Words: []string{"ДОМ"}, Game: "lego", GameTitle: "Строим слова из блоков"},
					{Day: 25, Title: "Буква Б", NewLetter: "Б", Syllables: []string{"БА", "БО", "БУ"}, Game: "lego", GameTitle: "Строим слова из блоков"},
					{Day: 26, Title: "Буква Г", NewLetter: "Г", Syllables: []string{"ГА", "ГО", "ГУ"}, Game: "lego", GameTitle: "Строим слова из блоков"},
					{Day: 27, Title: "Буква Р", NewLetter: "Р", Syllables: []string{"РА", "РО", "РУ"}, Words: []string{"РАК"}, Game: "lego", GameTitle: "Строим слова из блоков"},
					{Day: 28, Title: "Итог этапа 2", Words: []string{"МОСТ", "КУСТ", "СЛОН", "ЗУБ", "ДОМ", "РАК", "ВОЛК"}, Game: "builder", GameTitle: "Мастерская слов", IsCheckpoint: true, IsStageComplete: true},
				},
			},
		},
	},
	{
		number: 3,
		title:  "Простые предложения",
		weeks: []week{
			{
				number: 5,
				title:  "Растения и космос",
				days: []LessonDay{
					{Day: 29, Title: "Предложения 1", Sentences: []string{"КОТ СПИТ", "МАМА ДОМА", "ВОТ ДОМ"}, Game: "sentences", GameTitle: "Читаем предложения"},
					{Day: 30, Title: "Предложения 2", Sentences: []string{"РАК ТУТ", "СЛОН ЕСТ", "ПАПА ТУТ"}, Game: "sentences", GameTitle: "Читаем предложения", IsCheckpoint: true, IsStageComplete: true, IsFinal: true},
				},
			},
		},
	},
}

// allDays is the flattened catalog, indexed by day-1. Built once at
// startup so lookups never re-walk the nested stage/week structure.
var allDays []LessonDay

// checkpoints are the day numbers flagged IsCheckpoint, in order.
var checkpoints []int

func init() {
	for _, s := range stages {
		for _, w := range s.weeks {
			for _, d := range w.days {
				d.Stage = s.number
				d.StageTitle = s.title
				d.Week = w.number
				d.WeekTitle = w.title
				allDays = append(allDays, d)
				if d.IsCheckpoint {
					checkpoints = append(checkpoints, d.Day)
				}
			}
		}
	}
}

// GetDayData returns the catalog entry for a day number, or nil when
// the day is out of range. Day 0 is the diagnostic.
func GetDayData(dayNumber int) *LessonDay {
	if dayNumber == 0 {
		d := diagnosticDay
		return &d
	}
	if dayNumber < 1 || dayNumber > len(allDays) {
		return nil
	}
	d := allDays[dayNumber-1]
	return &d
}

// GetTotalDays returns the number of lesson days (the diagnostic day 0
// is not counted).
func GetTotalDays() int {
	return len(allDays)
}

// GetCheckpoints returns the day numbers flagged as checkpoints, in
// curriculum order.
func GetCheckpoints() []int {
	out := make([]int, len(checkpoints))
	copy(out, checkpoints)
	return out
}

// AllDays returns a copy of the flattened catalog in day order.
func AllDays() []LessonDay {
	out := make([]LessonDay, len(allDays))
	copy(out, allDays)
	return out
}
