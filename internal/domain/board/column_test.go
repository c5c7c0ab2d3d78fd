package board

import "testing"

func TestColumn_Validate(t *testing.T) {
	t.Parallel()

	valid := Column{BoardID: "b1", Name: "Novo", Color: "#22c55e"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name  string
		mod   func(c *Column)
		field string
	}{
		{name: "missing board", mod: func(c *Column) { c.BoardID = "" }, field: "board_id"},
		{name: "blank name", mod: func(c *Column) { c.Name = " " }, field: "name"},
		{name: "bad color", mod: func(c *Column) { c.Color = "green" }, field: "color"},
		{name: "negative order", mod: func(c *Column) { c.Order = -1 }, field: "order"},
		{name: "unknown outcome", mod: func(c *Column) { c.IsFinal = true; c.Outcome = "maybe" }, field: "outcome"},
		{name: "outcome on open column", mod: func(c *Column) { c.Outcome = OutcomeWon }, field: "outcome"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := valid
			tt.mod(&c)
			requireValidationField(t, c.Validate(), tt.field)
		})
	}
}

func TestColumn_Terminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		column Column
		want   Outcome
	}{
		{name: "open column is never terminal", column: Column{Name: "Fechado"}, want: OutcomeNone},
		{name: "final fechado", column: Column{Name: "Fechado", IsFinal: true}, want: OutcomeWon},
		{name: "final convertido mixed case", column: Column{Name: "Lead CONVERTIDO", IsFinal: true}, want: OutcomeWon},
		{name: "final perdido", column: Column{Name: "Perdido", IsFinal: true}, want: OutcomeLost},
		{name: "final cancelado", column: Column{Name: "Cancelado", IsFinal: true}, want: OutcomeLost},
		{name: "closed lost prefers lost", column: Column{Name: "Closed Lost", IsFinal: true}, want: OutcomeLost},
		{name: "final unknown name", column: Column{Name: "Arquivo", IsFinal: true}, want: OutcomeNone},
		{name: "explicit outcome wins", column: Column{Name: "Perdido", IsFinal: true, Outcome: OutcomeWon}, want: OutcomeWon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.column.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColumnUpdate_Apply(t *testing.T) {
	t.Parallel()

	name := "  Ganho "
	final := false
	base := Column{ID: "c1", Name: "Fechado", IsFinal: true, Outcome: OutcomeWon, Order: 3}

	if !(ColumnUpdate{}).IsEmpty() {
		t.Error("ColumnUpdate{}.IsEmpty() = false, want true")
	}

	got := ColumnUpdate{Name: &name}.Apply(base)
	if got.Name != "Ganho" || got.Order != 3 || got.Outcome != OutcomeWon {
		t.Errorf("Apply(name) = %+v, want trimmed name and untouched order/outcome", got)
	}

	got = ColumnUpdate{IsFinal: &final}.Apply(base)
	if got.IsFinal || got.Outcome != OutcomeNone {
		t.Errorf("Apply(isFinal=false) = %+v, want outcome cleared", got)
	}
}
