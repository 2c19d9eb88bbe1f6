package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery_Basic(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("products",
		WithColumns("id", "name"),
		WithCondition(WhereCond("store_id", Equal, "s1")),
		WithOrderBy("created_at", "desc"),
		WithLimit(10),
		WithOffset(20),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t,
		`SELECT "id", "name" FROM "products" WHERE "store_id" = $1 ORDER BY "created_at" DESC LIMIT $2 OFFSET $3`,
		query)
	assert.Equal(t, []any{"s1", 10, 20}, args)
}

func TestBuildListQuery_CountOnly(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("orders",
		WithCountOnly(),
		WithCondition(WhereCond("payment_status", Equal, "PAID")),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t, `SELECT COUNT(*) FROM "orders" WHERE "payment_status" = $1`, query)
	assert.Equal(t, []any{"PAID"}, args)
}

func TestBuildListQuery_SanitizesIdentifiers(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions(`products"; DROP TABLE products; --`,
		WithColumns("id"),
	)

	query, _ := BuildListQuery(opts)
	assert.NotContains(t, query, "DROP TABLE products; --\n")
	assert.Contains(t, query, `"products""; DROP TABLE products; --"`)
}

func TestBuildListQuery_ILike(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("stores",
		WithCondition(WhereCond("name", ILike, "%bakery%")),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t, `SELECT * FROM "stores" WHERE "name" ILIKE $1`, query)
	assert.Equal(t, []any{"%bakery%"}, args)
}
