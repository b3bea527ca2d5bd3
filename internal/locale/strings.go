package locale

import (
	_ "embed"
	"fmt"
	"reflect"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed strings.yaml
var stringsYAML []byte

// Strings is the table of UI copy for one language.
type Strings struct {
	Title               string `yaml:"title"`
	WelcomeTitle        string `yaml:"welcomeTitle"`
	SearchLang          string `yaml:"searchLang"`
	CommonLanguages     string `yaml:"commonLanguages"`
	AllLanguages        string `yaml:"allLanguages"`
	Start               string `yaml:"start"`
	Apply               string `yaml:"apply"`
	Close               string `yaml:"close"`
	Emergency           string `yaml:"emergency"`
	DescribeSymptoms    string `yaml:"describeSymptoms"`
	Send                string `yaml:"send"`
	VoiceStart          string `yaml:"voiceStart"`
	VoiceStop           string `yaml:"voiceStop"`
	NotDiagnosis        string `yaml:"notDiagnosis"`
	Help                string `yaml:"help"`
	Language            string `yaml:"language"`
	Menu                string `yaml:"menu"`
	StartOver           string `yaml:"startOver"`
	Privacy             string `yaml:"privacy"`
	PrivacyBody         string `yaml:"privacyBody"`
	Sources             string `yaml:"sources"`
	SourcesBody         string `yaml:"sourcesBody"`
	EmergencyInfo       string `yaml:"emergencyInfo"`
	About               string `yaml:"about"`
	ConfirmClear        string `yaml:"confirmClear"`
	Undo                string `yaml:"undo"`
	AssistantName       string `yaml:"assistantName"`
	You                 string `yaml:"you"`
	AssistantTyping     string `yaml:"assistantTyping"`
	Reviewing           string `yaml:"reviewing"`
	Options             string `yaml:"options"`
	Yes                 string `yaml:"yes"`
	No                  string `yaml:"no"`
	NotSure             string `yaml:"notSure"`
	AddSymptom          string `yaml:"addSymptom"`
	MoreOptions         string `yaml:"moreOptions"`
	LanguageApplied     string `yaml:"languageApplied"`
	LanguageSelected    string `yaml:"languageSelected"`
	NewMessage          string `yaml:"newMessage"`
	ConversationCleared string `yaml:"conversationCleared"`
	Copied              string `yaml:"copied"`
	CopyTranscript      string `yaml:"copyTranscript"`
	Quit                string `yaml:"quit"`
}

// Selected formats the "<native> selected" announcement.
func (s Strings) Selected(native string) string {
	return fmt.Sprintf(s.LanguageSelected, native)
}

// ReplyBody is the templated assistant acknowledgment.
func (s Strings) ReplyBody() string {
	return fmt.Sprintf("%s\n\n%s:\n• %s\n• %s\n• %s", s.Reviewing, s.Options, s.Yes, s.No, s.NotSure)
}

// QuickReplies returns the fixed quick-reply labels in display order.
func (s Strings) QuickReplies() []string {
	return []string{s.Yes, s.No, s.NotSure, s.AddSymptom, s.MoreOptions}
}

var (
	tablesOnce sync.Once
	tables     map[string]Strings
	tablesErr  error
)

func loadTables() {
	raw := make(map[string]Strings)
	if err := yaml.Unmarshal(stringsYAML, &raw); err != nil {
		tablesErr = err
		return
	}
	en, ok := raw["en"]
	if !ok {
		tablesErr = fmt.Errorf("string tables have no en entry")
		return
	}

	tables = make(map[string]Strings, len(raw))
	for code, s := range raw {
		tables[code] = withFallback(s, en)
	}
}

// withFallback fills every empty field of s from fallback.
func withFallback(s, fallback Strings) Strings {
	dst := reflect.ValueOf(&s).Elem()
	src := reflect.ValueOf(fallback)
	for i := 0; i < dst.NumField(); i++ {
		if dst.Field(i).String() == "" {
			dst.Field(i).SetString(src.Field(i).String())
		}
	}
	return s
}

// StringsFor returns the UI strings for a language code, falling back to
// English for languages without a table.
func StringsFor(code string) Strings {
	tablesOnce.Do(loadTables)
	if tablesErr != nil {
		panic(fmt.Sprintf("locale: embedded string tables are invalid: %v", tablesErr))
	}
	if s, ok := tables[code]; ok {
		return s
	}
	return tables["en"]
}

// HasTable reports whether code has its own string table.
func HasTable(code string) bool {
	tablesOnce.Do(loadTables)
	_, ok := tables[code]
	return ok
}
