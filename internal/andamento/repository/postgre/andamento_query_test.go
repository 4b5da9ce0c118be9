package postgre

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	repo "legal-office-management/internal/andamento/repository"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name     string
		opt      repo.ListOptions
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "process only",
			opt:      repo.ListOptions{ProcessoOABID: "p-1"},
			wantSQL:  "WHERE processo_oab_id = $1 ORDER BY data_movimentacao DESC, created_at DESC",
			wantArgs: []any{"p-1"},
		},
		{
			name:     "unread with page",
			opt:      repo.ListOptions{ProcessoOABID: "p-1", OnlyUnread: true, Limit: 20, Offset: 40},
			wantSQL:  "WHERE processo_oab_id = $1 AND lida = FALSE ORDER BY data_movimentacao DESC, created_at DESC LIMIT $2 OFFSET $3",
			wantArgs: []any{"p-1", 20, 40},
		},
		{
			name:     "offset without limit",
			opt:      repo.ListOptions{ProcessoOABID: "p-1", Offset: 5},
			wantSQL:  "WHERE processo_oab_id = $1 ORDER BY data_movimentacao DESC, created_at DESC OFFSET $2",
			wantArgs: []any{"p-1", 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotArgs := buildListQuery(tt.opt)
			if gotSQL != tt.wantSQL {
				t.Errorf("sql = %q\nwant  %q", gotSQL, tt.wantSQL)
			}
			if diff := cmp.Diff(tt.wantArgs, gotArgs); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
