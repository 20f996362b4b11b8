package engine

import "testing"

func TestParseActions(t *testing.T) {
	tests := []struct {
		input   string
		want    InputSet
		wantErr bool
	}{
		{"", NoInput, false},
		{"none", NoInput, false},
		{"forward", ActionForward, false},
		{"forward,fire", ActionForward | ActionFire, false},
		{" Left , SPACE ", ActionRotateCounterClockwise | ActionFire, false},
		{"cw,ccw,up", ActionRotateClockwise | ActionRotateCounterClockwise | ActionForward, false},
		{"fire,fire", ActionFire, false},
		{"jump", NoInput, true},
		{"forward,jump", NoInput, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseActions(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseActions(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseActions(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInputSet_String(t *testing.T) {
	tests := []struct {
		set  InputSet
		want string
	}{
		{NoInput, "none"},
		{ActionFire, "fire"},
		{ActionForward | ActionRotateClockwise, "forward,clockwise"},
		{ActionForward | ActionRotateClockwise | ActionRotateCounterClockwise | ActionFire, "forward,clockwise,counterclockwise,fire"},
	}
	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("InputSet(%d).String() = %q, want %q", tt.set, got, tt.want)
		}
	}
}

func TestInputSet_RoundTrip(t *testing.T) {
	for set := NoInput; set <= ActionForward|ActionRotateClockwise|ActionRotateCounterClockwise|ActionFire; set++ {
		parsed, err := ParseActions(set.String())
		if err != nil || parsed != set {
			t.Errorf("ParseActions(%q) = %v, %v; want %v", set.String(), parsed, err, set)
		}
	}
}

func TestInputSet_Has(t *testing.T) {
	set := ActionForward | ActionFire
	if !set.Has(ActionForward) || !set.Has(ActionFire) || !set.Has(ActionForward|ActionFire) {
		t.Error("Has() missed a held action")
	}
	if set.Has(ActionRotateClockwise) || set.Has(NoInput) {
		t.Error("Has() reported an action that is not held")
	}
}
