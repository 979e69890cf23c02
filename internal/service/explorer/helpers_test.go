package explorer

import (
	"context"
	"errors"

	"github.com/ougirez/concursos/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64 { return &n }
func yearPtr(y int) *int { return &y }

type fakeStore struct {
	rows     []*domain.Autorizacao
	years    []domain.YearCount
	rowsErr  error
	yearsErr error
	limit    uint64
}

func (f *fakeStore) ListAutorizacoes(_ context.Context, limit uint64) ([]*domain.Autorizacao, error) {
	f.limit = limit
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	if uint64(len(f.rows)) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func (f *fakeStore) ListAvailableYears(context.Context) ([]domain.YearCount, error) {
	if f.yearsErr != nil {
		return nil, f.yearsErr
	}
	return f.years, nil
}

var errBackend = errors.New("backend down")
