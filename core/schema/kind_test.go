package schema

import "testing"

func TestKind_StringParseRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		if err != nil {
			t.Errorf("ParseKind(%q) error = %v", kind.String(), err)
			continue
		}
		if parsed != kind {
			t.Errorf("ParseKind(%q) = %v, want %v", kind.String(), parsed, kind)
		}
	}
}

func TestParseKind_Unknown(t *testing.T) {
	for _, s := range []string{"", "Scorecard", "designSpec", "designspecv1", "v1"} {
		if _, err := ParseKind(s); err == nil {
			t.Errorf("ParseKind(%q) error = nil, want unknown-kind error", s)
		}
	}
}

func TestKind_Discriminant(t *testing.T) {
	tests := []struct {
		kind        Kind
		wantType    string
		wantVersion string
		wantOK      bool
	}{
		{
			kind:   KindScorecard,
			wantOK: false,
		},
		{
			kind:   KindDeceptiveReport,
			wantOK: false,
		},
		{
			kind:        KindDesignSpecV1,
			wantType:    "designSpec",
			wantVersion: "v1",
			wantOK:      true,
		},
		{
			kind:        KindDiscoverySpecV1,
			wantType:    "discoverySpec",
			wantVersion: "v1",
			wantOK:      true,
		},
		{
			kind:        KindContentTableV1,
			wantType:    "contentTable",
			wantVersion: "v1",
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			typ, version, ok := tt.kind.Discriminant()
			if ok != tt.wantOK || typ != tt.wantType || version != tt.wantVersion {
				t.Errorf("Discriminant() = (%q, %q, %v), want (%q, %q, %v)",
					typ, version, ok, tt.wantType, tt.wantVersion, tt.wantOK)
			}
		})
	}
}

func TestDeviceSize(t *testing.T) {
	tests := []struct {
		device     string
		wantWidth  float64
		wantHeight float64
	}{
		{device: "mobile", wantWidth: 375, wantHeight: 812},
		{device: "tablet", wantWidth: 768, wantHeight: 1024},
		{device: "desktop", wantWidth: 1920, wantHeight: 1080},
		{device: "watch", wantWidth: 375, wantHeight: 812},
		{device: "", wantWidth: 375, wantHeight: 812},
	}

	for _, tt := range tests {
		w, h := DeviceSize(tt.device)
		if w != tt.wantWidth || h != tt.wantHeight {
			t.Errorf("DeviceSize(%q) = %vx%v, want %vx%v", tt.device, w, h, tt.wantWidth, tt.wantHeight)
		}
	}
}

func TestInSet(t *testing.T) {
	if !InSet("medium", Severities) {
		t.Error("InSet(medium, Severities) = false, want true")
	}
	if InSet("Medium", Severities) {
		t.Error("InSet is case sensitive; Medium must not match")
	}
	if InSet("", nil) {
		t.Error("InSet(empty, nil) = true, want false")
	}
}
