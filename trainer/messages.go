package trainer

import (
	"fmt"

	"github.com/pianoear/pianoear"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Languages lists the UI languages, the first one being the fallback.
var Languages = []language.Tag{language.English, language.Russian}

var languageMatcher = language.NewMatcher(Languages)

// UI strings are keyed by their English text, so English needs no entries.
var translations = map[language.Tag][][2]string{
	language.Russian: {
		{"Piano Ear Trainer", "Тренер музыкального слуха"},
		{"Test your musical ear!\n\nA note will be played, and you have to\nfind it on the virtual piano keyboard.",
			"Проверьте свой музыкальный слух!\n\nВам будет проигрываться нота, а вы должны\nугадать её на виртуальной клавиатуре фортепиано."},
		{"Octaves:", "Октавы:"},
		{"Use sharps (black keys)", "Использовать диезы (чёрные клавиши)"},
		{"Start", "Начать"},
		{"Octaves", "Октавы"},
		{"Repeat", "Повторить"},
		{"Next note", "Следующая нота"},
		{"Stop", "Завершить"},
		{"Back", "Назад"},
		{"Piano octaves", "Октавы фортепиано"},
		{"Select at least one octave!", "Выберите хотя бы одну октаву!"},
		{"Pick the note on the keyboard", "Выберите ноту на клавиатуре"},
		{"Correct!", "Правильно!"},
		{"Wrong!", "Неправильно!"},
		{"Correct: %s", "Правильно: %s"},
		{"You picked: %s", "Вы выбрали: %s"},
		{"Streak: %d", "Серия: %d"},
		{"Best: %d", "Рекорд: %d"},
		{"Could not play the note: %v", "Не удалось воспроизвести ноту: %v"},
		{"Could not save preferences: %v", "Не удалось сохранить настройки: %v"},
		{"MIDI input: %s", "MIDI-вход: %s"},
		{"MIDI input closed", "MIDI-вход закрыт"},
		{"Could not open MIDI input: %v", "Не удалось открыть MIDI-вход: %v"},
		{"MIDI: not compiled", "MIDI: не поддерживается"},
		{"MIDI: no driver", "MIDI: нет драйвера"},
		{"MIDI: off", "MIDI: выкл."},
		{"Repeat the note (Space)", "Повторить ноту (пробел)"},
		{"Next note (Enter)", "Следующая нота (Enter)"},
		{"Show the octave reference (O)", "Показать справку по октавам (O)"},
		{"Finish the training (Esc)", "Завершить тренировку (Esc)"},
		{"Go back (Esc)", "Вернуться (Esc)"},
		{"Start training (Enter)", "Начать тренировку (Enter)"},
		{"Switch MIDI input", "Переключить MIDI-вход"},
		{"C", "До"}, {"C#", "До#"}, {"D", "Ре"}, {"D#", "Ре#"},
		{"E", "Ми"}, {"F", "Фа"}, {"F#", "Фа#"}, {"G", "Соль"},
		{"G#", "Соль#"}, {"A", "Ля"}, {"A#", "Ля#"}, {"B", "Си"},
		{"Do", "До"}, {"La", "Ля"}, {"Si", "Си"},
		{"Subcontra octave", "Субконтроктава"},
		{"Contra octave", "Контроктава"},
		{"Great octave", "Большая октава"},
		{"Small octave", "Малая октава"},
		{"First octave", "1-я октава"},
		{"Second octave", "2-я октава"},
		{"Third octave", "3-я октава"},
		{"Fourth octave", "4-я октава"},
		{"Fifth octave", "5-я октава"},
		{"Contra\noctave", "Контр-\nоктава"},
		{"Great\noctave", "Большая\nоктава"},
		{"Small\noctave", "Малая\nоктава"},
		{"First\noctave", "1-я\nоктава"},
		{"Second\noctave", "2-я\nоктава"},
		{"Third\noctave", "3-я\nоктава"},
		{"Fourth\noctave", "4-я\nоктава"},
		{"Fifth\noctave", "5-я\nоктава"},
	},
}

var octaveLabels = [pianoear.NumOctaves]string{
	"",
	"Contra\noctave",
	"Great\noctave",
	"Small\noctave",
	"First\noctave",
	"Second\noctave",
	"Third\noctave",
	"Fourth\noctave",
	"Fifth\noctave",
}

func init() {
	for tag, entries := range translations {
		for _, e := range entries {
			if err := message.SetString(tag, e[0], e[1]); err != nil {
				panic(fmt.Errorf("bad translation %q: %w", e[0], err))
			}
		}
	}
}

// NewPrinter returns a printer for the closest supported language. Unknown or
// malformed names give English.
func NewPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		return message.NewPrinter(Languages[0])
	}
	_, index, _ := languageMatcher.Match(tag)
	return message.NewPrinter(Languages[index])
}

// NoteName is the localized full name of a note, e.g. "C#, Small octave".
func NoteName(p *message.Printer, n pianoear.Note) string {
	return p.Sprintf("%s, %s", p.Sprintf(n.Pitch.String()), OctaveName(p, n.Octave))
}

func OctaveName(p *message.Printer, o pianoear.Octave) string {
	return p.Sprintf(o.String())
}

// OctaveCaption is the two line caption drawn under the first C of an octave
// on the reference keyboard.
func OctaveCaption(p *message.Printer, o pianoear.Octave) string {
	if o < 0 || o >= pianoear.NumOctaves || octaveLabels[o] == "" {
		return ""
	}
	return p.Sprintf(octaveLabels[o])
}
