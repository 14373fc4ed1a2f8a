package utils

import "strings"

// FormatDiscount приводит скидку к виду "-30%" / "+15%".
// Пустая строка возвращается как есть.
func FormatDiscount(discount string) string {
	if discount == "" {
		return discount
	}

	formatted := strings.TrimSpace(discount)

	// "+" оставляем как есть — это бонус, а не скидка
	if strings.HasPrefix(formatted, "+") {
		if !strings.HasSuffix(formatted, "%") {
			formatted += "%"
		}
		return formatted
	}

	if !strings.HasPrefix(formatted, "-") {
		formatted = "-" + formatted
	}

	if !strings.HasSuffix(formatted, "%") {
		formatted += "%"
	}

	return formatted
}

// FormatTextWithLineBreaks превращает обычный многострочный текст в HTML:
// каждая непустая строка — отдельный абзац. Текст, в котором уже есть
// HTML-теги, возвращается без изменений.
func FormatTextWithLineBreaks(text string) string {
	if text == "" {
		return ""
	}

	if strings.Contains(text, "<") && strings.Contains(text, ">") {
		return text
	}

	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(line)
		b.WriteString("</p>")
	}
	return b.String()
}

// NormalizeExternalURL дописывает https:// к внешним ссылкам без схемы.
func NormalizeExternalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
