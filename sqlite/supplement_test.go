package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/newsrag"
	"github.com/fwojciec/newsrag/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplementService(t *testing.T) {
	t.Parallel()

	t.Run("stores and lists supplements", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSupplementService(setupTestDB(t))
		ctx := context.Background()
		now := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)

		first := newsrag.NewSupplement("Pirmas failas", now)
		second := newsrag.NewSupplement("Antras failas", now)
		require.NoError(t, svc.CreateSupplement(ctx, first))
		require.NoError(t, svc.CreateSupplement(ctx, second))

		found, err := svc.FindSupplements(ctx)

		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, first.ID, found[0].ID)
		assert.Equal(t, "Pirmas failas", found[0].Text)
		assert.Equal(t, newsrag.SupplementHeadline, newsrag.StringValue(found[0].Headline))
		assert.Equal(t, newsrag.SupplementCategory, newsrag.StringValue(found[0].Category))
		assert.Equal(t, "2024.03.05 14:07", newsrag.StringValue(found[0].PublicationDate))
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSupplementService(setupTestDB(t))

		err := svc.CreateSupplement(context.Background(), newsrag.NewSupplement("  ", time.Now()))

		assert.Equal(t, newsrag.EINVALID, newsrag.ErrorCode(err))
	})
}
