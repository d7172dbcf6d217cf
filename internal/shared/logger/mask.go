package logger

import "strings"

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	// Keep only first character of username
	return username[:1] + "***@" + domain
}

// Example: 010-1234-5678 -> 010-****-5678
func MaskPhone(phone string) string {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}

	if len(digits) < 8 {
		return "****"
	}

	head := string(digits[:3])
	tail := string(digits[len(digits)-4:])
	return head + "-****-" + tail
}

// Example: 홍길동 -> 홍*동, 김철 -> 김*
func MaskName(name string) string {
	runes := []rune(name)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return "*"
	case 2:
		return string(runes[0]) + "*"
	}
	masked := make([]rune, len(runes))
	for i := range runes {
		masked[i] = '*'
	}
	masked[0] = runes[0]
	masked[len(runes)-1] = runes[len(runes)-1]
	return string(masked)
}
