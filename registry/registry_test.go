package registry

import (
	"errors"
	"testing"

	"github.com/Berison/gocounter/counter"
	"github.com/Berison/gocounter/errs"
	"github.com/Berison/gocounter/types"
	"github.com/google/go-cmp/cmp"
)

type declSummary struct {
	Name types.DeclName
	Kind DeclKind
}

// Decl は関数とカウンタを含むので、名前と種類だけを比較する
func summarize(decls []Decl) []declSummary {
	summaries := make([]declSummary, 0, len(decls))
	for _, d := range decls {
		summaries = append(summaries, declSummary{Name: d.Name, Kind: d.Kind})
	}
	return summaries
}

func TestRegistry_Declare(t *testing.T) {
	tests := []struct {
		name            string
		existingDecls   []Decl
		decl            Decl
		expected        []declSummary
		expectedErrType errs.ErrType
	}{
		{
			name: "declare counter",
			decl: NewCounterDecl("c", counter.New()),
			expected: []declSummary{
				{Name: "c", Kind: DeclKindCounter},
			},
		},
		{
			name: "declare incrementer",
			decl: NewIncrementerDecl("inc", counter.Incrementer()),
			expected: []declSummary{
				{Name: "inc", Kind: DeclKindIncrementer},
			},
		},
		{
			name: "keeps declaration order",
			existingDecls: []Decl{
				NewCounterDecl("b", counter.New()),
			},
			decl: NewCounterDecl("a", counter.New()),
			expected: []declSummary{
				{Name: "b", Kind: DeclKindCounter},
				{Name: "a", Kind: DeclKindCounter},
			},
		},
		{
			name: "redeclare is rejected",
			existingDecls: []Decl{
				NewCounterDecl("c", counter.New()),
			},
			decl: NewIncrementerDecl("c", counter.Incrementer()),
			expected: []declSummary{
				{Name: "c", Kind: DeclKindCounter},
			},
			expectedErrType: errs.BAD_INPUT_ERROR,
		},
		{
			name:            "blank identifier is rejected",
			decl:            NewCounterDecl("_", counter.New()),
			expected:        []declSummary{},
			expectedErrType: errs.BAD_INPUT_ERROR,
		},
		{
			name:            "counter decl without counter",
			decl:            Decl{Name: "c", Kind: DeclKindCounter},
			expected:        []declSummary{},
			expectedErrType: errs.INTERNAL_ERROR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut := NewRegistry()
			for _, d := range tt.existingDecls {
				if err := sut.Declare(d); err != nil {
					t.Fatalf("failed to set up registry: %v", err)
				}
			}

			err := sut.Declare(tt.decl)
			if tt.expectedErrType == "" && err != nil {
				t.Fatalf("Declare() returned an error: %v", err)
			}
			if tt.expectedErrType != "" {
				if err == nil {
					t.Fatalf("Declare() expected %s, got nil", tt.expectedErrType)
				}
				if got := errs.Classify(err); got != tt.expectedErrType {
					t.Errorf("Declare() error type = %s, want %s", got, tt.expectedErrType)
				}
			}

			if diff := cmp.Diff(tt.expected, summarize(sut.Decls())); diff != "" {
				t.Errorf("Decls() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegistry_Assign(t *testing.T) {
	t.Run("assign to undefined", func(t *testing.T) {
		sut := NewRegistry()
		err := sut.Assign(NewCounterDecl("c", counter.New()))

		var badInputErr *errs.BadInputError
		if !errors.As(err, &badInputErr) {
			t.Fatalf("Assign() error = %v, want BadInputError", err)
		}
		if err.Error() != "undefined: c" {
			t.Errorf("Assign() error = %q, want %q", err.Error(), "undefined: c")
		}
	})

	t.Run("assign replaces value and kind", func(t *testing.T) {
		sut := NewRegistry()
		old := counter.New()
		old.Increment()
		if err := sut.Declare(NewCounterDecl("x", old)); err != nil {
			t.Fatal(err)
		}
		if err := sut.Declare(NewCounterDecl("y", counter.New())); err != nil {
			t.Fatal(err)
		}

		if err := sut.Assign(NewIncrementerDecl("x", counter.Incrementer())); err != nil {
			t.Fatalf("Assign() returned an error: %v", err)
		}

		expected := []declSummary{
			{Name: "x", Kind: DeclKindIncrementer},
			{Name: "y", Kind: DeclKindCounter},
		}
		if diff := cmp.Diff(expected, summarize(sut.Decls())); diff != "" {
			t.Errorf("Decls() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRegistry_Lookup(t *testing.T) {
	sut := NewRegistry()
	c := counter.New()
	if err := sut.Declare(NewCounterDecl("c", c)); err != nil {
		t.Fatal(err)
	}

	t.Run("found", func(t *testing.T) {
		decl, ok := sut.Lookup("c")
		if !ok {
			t.Fatal("Lookup(c) not found")
		}
		if decl.Counter != c {
			t.Error("Lookup(c) returned a different counter")
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, ok := sut.Lookup("unknown"); ok {
			t.Error("Lookup(unknown) found, want not found")
		}
	})
}

func TestRegistry_IsRegisteredDecl(t *testing.T) {
	tests := []struct {
		name          string
		existingDecls []Decl
		checkName     string
		expectedFound bool
	}{
		{
			name: "found registered declaration",
			existingDecls: []Decl{
				NewCounterDecl("c1", counter.New()),
				NewIncrementerDecl("inc", counter.Incrementer()),
			},
			checkName:     "inc",
			expectedFound: true,
		},
		{
			name: "not found registered declaration",
			existingDecls: []Decl{
				NewCounterDecl("c1", counter.New()),
			},
			checkName:     "unknown",
			expectedFound: false,
		},
		{
			name:          "not found registered declaration (empty list)",
			existingDecls: []Decl{},
			checkName:     "c1",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Registry{
				decls: tt.existingDecls,
			}

			result := r.IsRegisteredDecl(types.DeclName(tt.checkName))

			if result != tt.expectedFound {
				t.Errorf("IsRegisteredDecl(%s) = %v, want %v",
					tt.checkName, result, tt.expectedFound)
			}
		})
	}
}

func TestDecl_Rename(t *testing.T) {
	c := counter.New()
	original := NewCounterDecl("c", c)
	alias := original.Rename("d")

	alias.Counter.Increment()

	if alias.Name != "d" || original.Name != "c" {
		t.Errorf("unexpected names: original=%s alias=%s", original.Name, alias.Name)
	}
	// 別名は同じカウンタを共有する
	if got := original.Counter.Count(); got != 1 {
		t.Errorf("original.Counter.Count() = %d, want 1", got)
	}
}
