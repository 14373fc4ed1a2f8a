package utils

import "testing"

func TestFormatDiscount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"30", "-30%"},
		{"-30", "-30%"},
		{"-30%", "-30%"},
		{"+15", "+15%"},
		{"+15%", "+15%"},
		{"  50  ", "-50%"},
		{"", ""},
	}

	for _, c := range cases {
		if got := FormatDiscount(c.in); got != c.want {
			t.Errorf("FormatDiscount(%q) = %q, ожидалось %q", c.in, got, c.want)
		}
	}
}

func TestFormatTextWithLineBreaks_PlainText(t *testing.T) {
	in := "Первая строка\n\n  Вторая строка  \n\n\nТретья"
	want := "<p>Первая строка</p><p>Вторая строка</p><p>Третья</p>"

	if got := FormatTextWithLineBreaks(in); got != want {
		t.Errorf("получено %q, ожидалось %q", got, want)
	}
}

func TestFormatTextWithLineBreaks_HTMLPassthrough(t *testing.T) {
	in := "<p>Уже html</p>\n<p>второй абзац</p>"
	if got := FormatTextWithLineBreaks(in); got != in {
		t.Errorf("HTML должен возвращаться без изменений, получено %q", got)
	}
}

func TestFormatTextWithLineBreaks_Empty(t *testing.T) {
	if got := FormatTextWithLineBreaks(""); got != "" {
		t.Errorf("для пустого входа ожидалась пустая строка, получено %q", got)
	}
}

func TestNormalizeExternalURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com/page", "https://example.com/page"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"  partner.ru  ", "https://partner.ru"},
		{"", ""},
	}

	for _, c := range cases {
		if got := NormalizeExternalURL(c.in); got != c.want {
			t.Errorf("NormalizeExternalURL(%q) = %q, ожидалось %q", c.in, got, c.want)
		}
	}
}
