package lang

import (
	"embed"
	"encoding/json"
	"fmt"
	"schack/src/base"
)

//go:embed dict/*.json
var dictFiles embed.FS

type LangType int

const (
	EN LangType = iota
	RU
)

func LangFromString(s string) LangType {
	switch s {
	case "ru":
		return RU
	default:
		return EN
	}
}

type GUILangWorker struct {
	lang LangType
	dict map[string]string
}

// create object LangWorker and set lang
func NewGUILangWorker(l LangType) (*GUILangWorker, error) {
	lw := &GUILangWorker{dict: make(map[string]string)}
	if err := lw.SetLang(l); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

func (lw *GUILangWorker) SetLang(l LangType) error {
	data, err := dictFiles.ReadFile("dict/" + langTypeToJsonName(l))
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error decode dictionary: %w", err)
	}
	lw.lang = l
	lw.dict = dict
	return nil
}

func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key // if key is not found
}

// StatusLine is the text shown above the board.
func (lw *GUILangWorker) StatusLine(status base.GameStatus, whiteToMove bool) string {
	line := lw.T("status." + status.String())
	if status.Finished() || status == base.InvalidGame {
		return line
	}
	if whiteToMove {
		return line + " " + lw.T("turn.white")
	}
	return line + " " + lw.T("turn.black")
}

func langTypeToJsonName(l LangType) string {
	switch l {
	case RU:
		return "ru.json"
	default:
		return "en.json"
	}
}
