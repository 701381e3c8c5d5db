package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"translated", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres foreign key", &pgconn.PgError{Code: "23503"}, false},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062}, true},
		{"mysql other", &mysql.MySQLError{Number: 1452}, false},
		{"sqlite", errors.New("constraint failed: UNIQUE constraint failed: tags.label (2067)"), true},
		{"sqlserver", errors.New("mssql: Cannot insert duplicate key row in object 'dbo.tags'"), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateKey(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	assert.NoError(t, storeError(nil, "op", "dup"))

	notFound := NotFound("Review not found")
	assert.Same(t, notFound, storeError(notFound, "op", "dup"), "service errors pass through")

	err := storeError(gorm.ErrDuplicatedKey, "create tag", "Tag exists")
	assert.True(t, IsConflict(err))
	assert.Equal(t, "Tag exists: duplicated key not allowed", err.Error())
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// without a conflict message duplicates are plain store errors
	err = storeError(gorm.ErrDuplicatedKey, "upsert review", "")
	assert.Equal(t, KindStore, KindOf(err))

	err = storeError(errors.New("disk I/O error"), "list tags", "")
	assert.Equal(t, KindStore, KindOf(err))
	assert.Equal(t, "list tags failed: disk I/O error", err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", NotFound("x"))))
	assert.Equal(t, KindBadRequest, KindOf(BadRequest("x")))
	assert.Equal(t, KindStore, KindOf(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "100!%", escapeLike("100%"))
	assert.Equal(t, "a!_b!!c", escapeLike("a_b!c"))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.33, round2(13.0/3))
	assert.Equal(t, 4.67, round2(14.0/3))
	assert.Equal(t, 0.0, round2(0))
}
