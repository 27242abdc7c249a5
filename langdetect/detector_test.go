package langdetect

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{"turkish special chars", "Merhaba, nasılsın?", Turkish},
		{"turkish common word", "tesekkur yerine merhaba dedim", Turkish},
		{"turkish chars beat other scripts", "Hello ş привет", Turkish},
		{"arabic script", "مرحبا بك في اليابان", Arabic},
		{"chinese script", "你好世界", Chinese},
		{"japanese hiragana", "こんにちは", Japanese},
		{"japanese katakana", "コンニチハ", Japanese},
		{"russian cyrillic", "Привет, как дела", Russian},
		{"spanish common word", "hola amigo", Spanish},
		{"spanish multi-word entry", "ayuda por favor", Spanish},
		{"french common word", "bonjour tout le monde", French},
		{"german common word", "hallo, wie geht es dir", German},
		{"english", "hello there, what time is it", English},
		{"empty input", "", English},
		{"numbers only", "12345", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectShortWordsNeedExactMatch(t *testing.T) {
	// "o" and "yo" are listed common words but must not match inside
	// unrelated English words.
	for _, text := range []string{"how are you", "so much to do"} {
		if got := Detect(text); got != English {
			t.Errorf("Detect(%q) = %q, want %q", text, got, English)
		}
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		lang Language
		want string
	}{
		{Turkish, "Turkish"},
		{English, "English"},
		{Spanish, "Spanish"},
		{French, "French"},
		{German, "German"},
		{Arabic, "Arabic"},
		{Chinese, "Chinese"},
		{Japanese, "Japanese"},
		{Russian, "Russian"},
		{Language("xx"), "English"},
		{Language(""), "English"},
	}

	for _, tt := range tests {
		if got := tt.lang.Name(); got != tt.want {
			t.Errorf("Language(%q).Name() = %q, want %q", string(tt.lang), got, tt.want)
		}
	}
}
