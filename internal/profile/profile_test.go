package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/db"
)

type backend interface {
	For(owner string) KV
}

func backends(t *testing.T) map[string]backend {
	t.Helper()
	sqlDB, err := db.OpenMigrated(":memory:", assets.Migrations())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return map[string]backend{
		"memory": NewMemory(),
		"sqlite": NewSQLite(sqlDB),
	}
}

func TestLoginAndLoad(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			ctx := context.Background()
			kv := b.For("p1")

			p, err := Load(ctx, kv)
			is.NoErr(err)
			is.True(!p.LoggedIn())
			is.Equal(p.HighScore, 0)

			p, err = Login(ctx, kv, "  Ada  ")
			is.NoErr(err)
			is.Equal(p.Name, "Ada")

			p, err = Load(ctx, kv)
			is.NoErr(err)
			is.Equal(p, Profile{Name: "Ada"})
		})
	}
}

func TestLoginRejectsBlank(t *testing.T) {
	is := is.New(t)
	kv := NewMemory().For("p1")
	_, err := Login(context.Background(), kv, "   ")
	is.True(errors.Is(err, ErrInvalidName))

	_, ok, _ := kv.Get(context.Background(), KeyPlayerName)
	is.True(!ok)
}

func TestRecordWinOnlyRaises(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			ctx := context.Background()
			kv := b.For("p1")

			p, err := RecordWin(ctx, kv, 80)
			is.NoErr(err)
			is.Equal(p.HighScore, 80)

			p, err = RecordWin(ctx, kv, 50)
			is.NoErr(err)
			is.Equal(p.HighScore, 80)

			p, err = RecordWin(ctx, kv, 120)
			is.NoErr(err)
			is.Equal(p.HighScore, 120)

			raw, ok, err := kv.Get(ctx, KeyHighScore)
			is.NoErr(err)
			is.True(ok)
			is.Equal(raw, "120")
		})
	}
}

func TestOwnersAreIsolated(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			ctx := context.Background()
			_, err := Login(ctx, b.For("a"), "Ann")
			is.NoErr(err)
			_, err = RecordWin(ctx, b.For("a"), 40)
			is.NoErr(err)

			p, err := Load(ctx, b.For("b"))
			is.NoErr(err)
			is.Equal(p, Profile{})
		})
	}
}

func TestGarbageHighScoreReadsZero(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	kv := NewMemory().For("p1")
	is.NoErr(kv.Set(ctx, KeyHighScore, "not a number"))

	p, err := Load(ctx, kv)
	is.NoErr(err)
	is.Equal(p.HighScore, 0)

	p, err = RecordWin(ctx, kv, 10)
	is.NoErr(err)
	is.Equal(p.HighScore, 10)
}
