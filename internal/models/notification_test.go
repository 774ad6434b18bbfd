package models

import "testing"

func TestParseNotificationType(t *testing.T) {
	cases := []struct {
		in   string
		want NotificationType
	}{
		{"info", NotificationTypeInfo},
		{"WARNING", NotificationTypeWarning},
		{"Error", NotificationTypeError},
		{"success", NotificationTypeSuccess},
	}
	for _, tc := range cases {
		got, err := ParseNotificationType(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: got %q want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseNotificationType("critical"); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if _, err := ParseNotificationType(""); err == nil {
		t.Fatal("expected error for empty type")
	}
}

func TestParseTemplateFormat(t *testing.T) {
	if got, err := ParseTemplateFormat("HTML"); err != nil || got != TemplateFormatHTML {
		t.Fatalf("got %q err %v", got, err)
	}
	if got, err := ParseTemplateFormat("markdown"); err != nil || got != TemplateFormatMarkdown {
		t.Fatalf("got %q err %v", got, err)
	}
	if _, err := ParseTemplateFormat("docx"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseRecurrencePattern(t *testing.T) {
	if got, err := ParseRecurrencePattern("Weekly"); err != nil || got != RecurrenceWeekly {
		t.Fatalf("got %q err %v", got, err)
	}
	if _, err := ParseRecurrencePattern("fortnightly"); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

func TestParseTargetingType(t *testing.T) {
	if got, err := ParseTargetingType("user_group"); err != nil || got != TargetingUserGroup {
		t.Fatalf("got %q err %v", got, err)
	}
	if _, err := ParseTargetingType("region"); err == nil {
		t.Fatal("expected error for unknown targeting type")
	}
}
