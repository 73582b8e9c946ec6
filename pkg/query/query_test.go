package query_test

import (
	"testing"

	"github.com/poshan-stack/nutriscan/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "assessments", "a").
		Project("id", "id").
		Project("child_name", "childName").
		Project("assessed_at", "assessedAt")
}

func ptr(s string) *string { return &s }

func TestProjectionMapFrom(t *testing.T) {
	p := testProjection()
	got := p.From()
	want := "public.assessments a"
	if got != want {
		t.Errorf("From() = %q, want %q", got, want)
	}
}

func TestProjectionMapAlias(t *testing.T) {
	p := testProjection()
	if got := p.Alias(); got != "a" {
		t.Errorf("Alias() = %q, want %q", got, "a")
	}
}

func TestProjectionMapColumns(t *testing.T) {
	p := testProjection()
	got := p.Columns()
	want := "a.id, a.child_name, a.assessed_at"
	if got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumnList(t *testing.T) {
	p := testProjection()
	got := p.ColumnList()
	if len(got) != 3 {
		t.Fatalf("ColumnList() length = %d, want 3", len(got))
	}
	want := []string{"a.id", "a.child_name", "a.assessed_at"}
	for i, col := range got {
		if col != want[i] {
			t.Errorf("ColumnList()[%d] = %q, want %q", i, col, want[i])
		}
	}
}

func TestProjectionMapColumnLookup(t *testing.T) {
	p := testProjection()

	tests := []struct {
		name     string
		viewName string
		want     string
	}{
		{"mapped field", "childName", "a.child_name"},
		{"mapped timestamp", "assessedAt", "a.assessed_at"},
		{"unmapped passthrough", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.viewName); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, got, tt.want)
			}
		})
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single ascending",
			input: "childName",
			want:  []query.SortField{{Field: "childName", Descending: false}},
		},
		{
			name:  "single descending",
			input: "-assessedAt",
			want:  []query.SortField{{Field: "assessedAt", Descending: true}},
		},
		{
			name:  "multiple mixed",
			input: "childName,-assessedAt",
			want: []query.SortField{
				{Field: "childName", Descending: false},
				{Field: "assessedAt", Descending: true},
			},
		},
		{
			name:  "with spaces",
			input: " childName , -assessedAt ",
			want: []query.SortField{
				{Field: "childName", Descending: false},
				{Field: "assessedAt", Descending: true},
			},
		},
		{
			name:  "empty parts skipped",
			input: "childName,,assessedAt",
			want: []query.SortField{
				{Field: "childName", Descending: false},
				{Field: "assessedAt", Descending: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("ParseSortFields(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSortFields(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuilderBuild(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.Build()

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a"
	if sql != wantSQL {
		t.Errorf("Build() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuilderBuildCount(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.assessments a"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilderBuildPage(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "assessedAt", Descending: true})
	sql, args := b.BuildPage(2, 10)

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a ORDER BY a.assessed_at DESC LIMIT 10 OFFSET 10"
	if sql != wantSQL {
		t.Errorf("BuildPage() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildPage() args = %v, want empty", args)
	}
}

func TestBuilderBuildSingle(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.BuildSingle("id", "abc-123")

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a WHERE a.id = $1"
	if sql != wantSQL {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "abc-123" {
		t.Errorf("BuildSingle() args = %v, want [abc-123]", args)
	}
}

func TestBuilderWhereEquals(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("childName", "Asha")
	sql, args := b.Build()

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a WHERE a.child_name = $1"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "Asha" {
		t.Errorf("args = %v, want [Asha]", args)
	}
}

func TestBuilderWhereEqualsNilSkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("childName", nil)
	sql, args := b.Build()

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderWhereEqualsTypedNilSkipped(t *testing.T) {
	var name *string
	b := query.NewBuilder(testProjection())
	b.WhereEquals("childName", name)
	_, args := b.Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderWhereContains(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereContains("childName", ptr("ash"))
	sql, args := b.Build()

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a WHERE a.child_name ILIKE $1"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "%ash%" {
		t.Errorf("args = %v, want [%%ash%%]", args)
	}
}

func TestBuilderWhereContainsNilSkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereContains("childName", nil)
	_, args := b.Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderWhereContainsEmptySkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereContains("childName", ptr(""))
	_, args := b.Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderWhereSearch(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereSearch(ptr("asha"), "childName", "id")
	sql, args := b.Build()

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a WHERE (a.child_name ILIKE $1 OR a.id ILIKE $2)"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 2 || args[0] != "%asha%" || args[1] != "%asha%" {
		t.Errorf("args = %v, want [%%asha%% %%asha%%]", args)
	}
}

func TestBuilderWhereSearchNilSkipped(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereSearch(nil, "childName")
	_, args := b.Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilderMultipleConditions(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("childName", "Asha")
	b.WhereContains("id", ptr("abc"))
	sql, args := b.Build()

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a WHERE a.child_name = $1 AND a.id ILIKE $2"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 2 {
		t.Fatalf("args length = %d, want 2", len(args))
	}
	if args[0] != "Asha" || args[1] != "%abc%" {
		t.Errorf("args = %v, want [Asha %%abc%%]", args)
	}
}

func TestBuilderOrderByFields(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "id", Descending: false})
	b.OrderByFields([]query.SortField{
		{Field: "assessedAt", Descending: true},
		{Field: "childName", Descending: false},
	})
	sql, _ := b.Build()

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a ORDER BY a.assessed_at DESC, a.child_name ASC"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
}

func TestBuilderDefaultSort(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "assessedAt", Descending: true})
	sql, _ := b.Build()

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a ORDER BY a.assessed_at DESC"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
}

func TestBuilderBuildCountWithConditions(t *testing.T) {
	b := query.NewBuilder(testProjection())
	b.WhereEquals("childName", "Asha")
	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.assessments a WHERE a.child_name = $1"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "Asha" {
		t.Errorf("args = %v, want [Asha]", args)
	}
}

func TestBuilderBuildPageWithConditions(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "id"})
	b.WhereContains("childName", ptr("rav"))
	sql, args := b.BuildPage(3, 25)

	wantSQL := "SELECT a.id, a.child_name, a.assessed_at FROM public.assessments a WHERE a.child_name ILIKE $1 ORDER BY a.id ASC LIMIT 25 OFFSET 50"
	if sql != wantSQL {
		t.Errorf("sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 1 || args[0] != "%rav%" {
		t.Errorf("args = %v, want [%%rav%%]", args)
	}
}
