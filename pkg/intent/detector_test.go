package intent

import "testing"

func testDetector() *Detector {
	return NewDetector(
		Rule{Intent: IntentRating, Keywords: []string{"gracias", "adios", "hasta luego"}},
		Rule{Intent: IntentEscalation, Keywords: []string{"humano", "asesor", "hablar con alguien"}},
	)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{name: "plain question", message: "¿Cómo cambio mi plan?", want: IntentNone},
		{name: "closing phrase", message: "Gracias por la ayuda", want: IntentRating},
		{name: "escalation keyword", message: "quiero hablar con un humano", want: IntentEscalation},
		{name: "case insensitive", message: "NECESITO UN ASESOR", want: IntentEscalation},
		{name: "substring match", message: "humanos por favor", want: IntentEscalation},
		{name: "multi word keyword", message: "puedo hablar con alguien?", want: IntentEscalation},
		{name: "rating wins over escalation", message: "gracias, igual quiero un humano", want: IntentRating},
		{name: "empty message", message: "", want: IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testDetector().Detect(tt.message); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestDetectNoRules(t *testing.T) {
	d := NewDetector()
	if got := d.Detect("gracias"); got != IntentNone {
		t.Errorf("Detect() with no rules = %v, want IntentNone", got)
	}
}
