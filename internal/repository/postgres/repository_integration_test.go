package postgres_test

import (
	"testing"

	gorm "github.com/jinzhu/gorm"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"uniforms-pos/internal/models"
	pg "uniforms-pos/internal/repository/postgres"
)

type pgEnv struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	DB       *gorm.DB
	R        *pg.SaleRowRepo
}

func upPostgres(t *testing.T) *pgEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_DB=uniforms",
		"POSTGRES_USER=app",
		"POSTGRES_PASSWORD=app",
	})
	require.NoError(t, err)

	env := &pgEnv{pool: pool, resource: resource}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	require.NoError(t, pool.Retry(func() error {
		db, err := pg.ConnectDB(pg.Config{
			Host:     "localhost",
			Port:     resource.GetPort("5432/tcp"),
			Username: "app",
			Password: "app",
			DbName:   "uniforms",
			SslMode:  "disable",
		})
		if err != nil {
			return err
		}
		if err := pg.Migrate(db); err != nil {
			return err
		}
		env.DB = db
		env.R = pg.NewSaleRowRepo(db)
		return nil
	}))

	return env
}

func rows(orderID, soldAt string, subtotals ...int64) []models.Row {
	var total int64
	for _, s := range subtotals {
		total += s
	}
	out := make([]models.Row, len(subtotals))
	for i, s := range subtotals {
		out[i] = models.Row{
			OrderID:          orderID,
			RowNumber:        i + 1,
			SoldAt:           soldAt,
			CustomerName:     "Laura Gomez",
			PrimaryPhone:     "3001234567",
			School:           models.DefaultSchool,
			ChildKind:        models.Boy,
			StudentName:      "Mateo",
			ShirtQuantity:    1,
			ShirtSize:        "10",
			UnitShirtPrice:   s,
			Subtotal:         s,
			OrderTotal:       total,
			PaymentStatus:    models.StatusPending,
			BalanceAllocated: s,
		}
	}
	return out
}

func Test_Postgres_SaveLoad_FullOverwrite(t *testing.T) {
	env := upPostgres(t)

	first := append(rows("order-b", "2026-02-14 16:45", 30000, 45000), rows("order-a", "2026-02-13 09:00", 32000)...)
	first[1].FabricLog = models.FabricLog{{At: "2026-02-14 16:45", Meters: 1.5}}
	require.NoError(t, env.R.Save(first))

	got, err := env.R.Load()
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []string{"order-b", "order-b", "order-a"}, []string{got[0].OrderID, got[1].OrderID, got[2].OrderID})
	require.Equal(t, first[1].FabricLog, got[1].FabricLog)
	require.Zero(t, first[2].Position, "input rows must not change")

	require.NoError(t, env.R.Save(rows("order-c", "2026-03-01 10:00", 10000)))
	got, err = env.R.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "order-c", got[0].OrderID)
}

func Test_Postgres_ReplaceOrder_Get_GetAll(t *testing.T) {
	env := upPostgres(t)

	require.NoError(t, env.R.ReplaceOrder(rows("order-1", "2026-02-14 16:45", 30000, 45000)))
	require.NoError(t, env.R.ReplaceOrder(rows("order-2", "2026-02-15 08:00", 31000)))

	updated := rows("order-1", "2026-02-14 16:45", 30000)
	updated[0].PaidAllocated, updated[0].BalanceAllocated = 30000, 0
	updated[0].PaymentStatus = models.StatusPaidInFull
	require.NoError(t, env.R.ReplaceOrder(updated))

	got, err := env.R.Get("order-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, models.StatusPaidInFull, got[0].PaymentStatus)

	all, err := env.R.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func Test_Postgres_KeepsSaveOrderWithinOneMinute(t *testing.T) {
	env := upPostgres(t)

	// Same minute, ids sorting against save order.
	require.NoError(t, env.R.Save(append(rows("zz", "2026-02-14 16:45", 30000), rows("aa", "2026-02-14 16:45", 45000)...)))
	require.NoError(t, env.R.ReplaceOrder(rows("mm", "2026-02-14 16:45", 10000)))

	updated := rows("zz", "2026-02-14 16:45", 30000)
	updated[0].PaymentStatus = models.StatusPaidInFull
	require.NoError(t, env.R.ReplaceOrder(updated))

	got, err := env.R.Load()
	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.OrderID
	}
	require.Equal(t, []string{"zz", "aa", "mm"}, ids)
	require.Equal(t, models.StatusPaidInFull, got[0].PaymentStatus)
}

func Test_Postgres_Get_NotFound(t *testing.T) {
	env := upPostgres(t)

	_, err := env.R.Get("missing")
	require.True(t, gorm.IsRecordNotFoundError(err))
}

func Test_Postgres_ReplaceOrder_MissingTable_Error(t *testing.T) {
	env := upPostgres(t)

	require.NoError(t, env.DB.DropTable(&models.Row{}).Error)

	err := env.R.ReplaceOrder(rows("order-x", "2026-02-14 16:45", 30000))
	require.Error(t, err, "expected error because sale_rows is missing")
}

func Test_Postgres_GetAll_Empty_OK(t *testing.T) {
	env := upPostgres(t)

	all, err := env.R.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 0)
}
