package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"sheets": map[string]any{
			"spreadsheetId":   "",
			"credentialsPath": "",
			"addressSheet":    "Addresses",
		},
		"matching": map[string]any{
			"activeFilterEnabled": false,
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SHEETS_SPREADSHEETID", want: "sheets.spreadsheetId"},
		{envKey: "SHEETS_CREDENTIALSPATH", want: "sheets.credentialsPath"},
		{envKey: "MATCHING_ACTIVEFILTERENABLED", want: "matching.activeFilterEnabled"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
