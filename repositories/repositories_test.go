package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thyeshengleng/collection-form/database"
	"github.com/thyeshengleng/collection-form/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.InitializeDatabase(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// backends returns a fresh, empty repository per storage strategy
func backends(t *testing.T) map[string]func() RecordRepository {
	return map[string]func() RecordRepository{
		"memory": func() RecordRepository {
			return NewCollectionRepository(NewMemoryCollection())
		},
		"csv": func() RecordRepository {
			return NewCollectionRepository(NewCSVCollection(filepath.Join(t.TempDir(), "records.csv")))
		},
		"sql": func() RecordRepository {
			return NewSQLRecordRepository(setupTestDB(t))
		},
		"http": func() RecordRepository {
			server := newFormServer(t, "[]")
			return NewCollectionRepository(NewKVCollection(server.URL, 5*time.Second))
		},
	}
}

// formServer stores the /api/form document the way the API server does
type formServer struct {
	*httptest.Server
	mu  sync.Mutex
	doc []byte
}

func newFormServer(t *testing.T, initial string) *formServer {
	fs := &formServer{doc: []byte(initial)}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/form" {
			http.NotFound(w, r)
			return
		}

		fs.mu.Lock()
		defer fs.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			w.Write(fs.doc)
		case http.MethodPost:
			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			fs.doc = body
			w.Write([]byte("Data saved successfully"))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *formServer) document() []byte {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]byte(nil), fs.doc...)
}

func acmeFields() models.Fields {
	return models.Fields{
		models.FieldUserType:                    models.UserTypeNew,
		models.FieldCompanyName:                 "Acme",
		models.FieldEmail:                       "a@acme.io",
		models.FieldAddress:                     "1 Road",
		models.FieldBusinessInfo:                "Retail",
		models.FieldTaxID:                       "T1",
		models.FieldEInvoiceStartDate:           "2024-01-01",
		models.FieldPlugInModule:                "Deposit Plugin, Shipment Plugin",
		models.FieldVPNInfo:                     "vpn",
		models.FieldModuleLicense:               "5 users",
		models.FieldReportTemplate:              "SO, INV",
		models.FieldMigrationMasterData:         "yes",
		models.FieldMigrationOutstandingBalance: "100",
		models.FieldStatus:                      models.StatusPending,
	}
}

func fieldsFor(company, email string) models.Fields {
	f := acmeFields()
	f[models.FieldCompanyName] = company
	f[models.FieldEmail] = email
	return f
}

func seed(t *testing.T, ctx context.Context, repo RecordRepository, companies ...string) models.RecordSet {
	var set models.RecordSet
	for _, c := range companies {
		var err error
		_, set, err = repo.Create(ctx, fieldsFor(c, strings.ToLower(c)+"@example.com"))
		require.NoError(t, err)
	}
	return set
}

func TestCreateThenLoad(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo()
			seed(t, ctx, repo, "Beta", "Gamma")

			before, err := repo.Load(ctx)
			require.NoError(t, err)

			created, _, err := repo.Create(ctx, acmeFields())
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.NotEmpty(t, created.CreatedDate)

			after, err := repo.Load(ctx)
			require.NoError(t, err)
			require.Len(t, after, len(before)+1)

			last := after[len(after)-1]
			assert.Equal(t, created.ID, last.ID)
			assert.Equal(t, acmeFields(), last.Fields())
		})
	}
}

func TestDeleteShiftsFollowingRecords(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 0; i < 3; i++ {
				repo := newRepo()
				set := seed(t, ctx, repo, "A", "B", "C")

				_, err := repo.Delete(ctx, set[i].ID)
				require.NoError(t, err)

				after, err := repo.Load(ctx)
				require.NoError(t, err)
				require.Len(t, after, 2)

				want := append(set[:i:i], set[i+1:]...)
				assert.Equal(t, want, after, "delete at %d", i)
			}
		})
	}
}

func TestUpdateChangesOnlyThatField(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo()
			set := seed(t, ctx, repo, "A", "B")

			_, err := repo.Update(ctx, set[1].ID, models.Fields{models.FieldStatus: models.StatusComplete})
			require.NoError(t, err)

			after, err := repo.Load(ctx)
			require.NoError(t, err)
			require.Len(t, after, 2)

			assert.Equal(t, set[0], after[0])
			expected := set[1]
			expected.Status = models.StatusComplete
			assert.Equal(t, expected, after[1])
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo()
			seed(t, ctx, repo, "A", "B", "C")

			before, err := repo.Load(ctx)
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, before))

			after, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestAcmeScenario(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo()

			created, set, err := repo.Create(ctx, acmeFields())
			require.NoError(t, err)
			require.Len(t, set, 1)

			found, err := repo.Get(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Acme", found.CompanyName)

			set, err = repo.Update(ctx, created.ID, models.Fields{models.FieldStatus: models.StatusComplete})
			require.NoError(t, err)
			require.Len(t, set, 1)
			assert.Equal(t, models.StatusComplete, set[0].Status)

			set, err = repo.Delete(ctx, created.ID)
			require.NoError(t, err)
			assert.Empty(t, set)

			loaded, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, loaded)
		})
	}
}

func TestUnknownIDAndFields(t *testing.T) {
	for name, newRepo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo()
			set := seed(t, ctx, repo, "A")

			_, err := repo.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrRecordNotFound)

			_, err = repo.Update(ctx, "missing", models.Fields{models.FieldStatus: models.StatusComplete})
			assert.ErrorIs(t, err, ErrRecordNotFound)

			_, err = repo.Delete(ctx, "missing")
			assert.ErrorIs(t, err, ErrRecordNotFound)

			_, err = repo.Update(ctx, set[0].ID, models.Fields{"Colour": "red"})
			assert.ErrorIs(t, err, models.ErrUnknownField)

			_, err = repo.Update(ctx, set[0].ID, models.Fields{models.FieldID: "other"})
			assert.ErrorIs(t, err, models.ErrImmutableField)

			_, _, err = repo.Create(ctx, models.Fields{"Colour": "red"})
			assert.ErrorIs(t, err, models.ErrUnknownField)

			after, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, set, after)
		})
	}
}

func TestCollectionAssignsMissingIDsOnce(t *testing.T) {
	ctx := context.Background()
	legacy := models.Record{CompanyName: "Legacy", Email: "old@example.com"}
	coll := NewMemoryCollection(legacy, legacy)
	repo := NewCollectionRepository(coll)

	first, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.NotEmpty(t, first[0].ID)
	assert.NotEqual(t, first[0].ID, first[1].ID)

	second, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, err := coll.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, stored)
}

func TestKVCollectionBackfillsLegacyIDs(t *testing.T) {
	ctx := context.Background()
	server := newFormServer(t, `[{"Company Name":"Legacy","Email":"old@example.com","Status":"pending"},{"Company Name":"Other"}]`)
	repo := NewCollectionRepository(NewKVCollection(server.URL, 5*time.Second))

	first, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.NotEmpty(t, first[0].ID)
	assert.Equal(t, "Legacy", first[0].CompanyName)

	var raw []map[string]string
	require.NoError(t, json.Unmarshal(server.document(), &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, first[0].ID, raw[0]["ID"])
	assert.Equal(t, first[1].ID, raw[1]["ID"])

	_, err = repo.Delete(ctx, first[0].ID)
	require.NoError(t, err)

	after, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first[1:], after)
}

type failingCollection struct {
	err error
}

func (f failingCollection) Load(ctx context.Context) (models.RecordSet, error) {
	return nil, f.err
}

func (f failingCollection) Save(ctx context.Context, set models.RecordSet) error {
	return f.err
}

func TestCollectionRepositorySurfacesLoadErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	repo := NewCollectionRepository(failingCollection{err: boom})

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, boom)

	_, _, err = repo.Create(ctx, acmeFields())
	assert.ErrorIs(t, err, boom)
}

func TestCSVCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is empty", func(t *testing.T) {
		coll := NewCSVCollection(filepath.Join(t.TempDir(), "none.csv"))
		set, err := coll.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("header has ID first", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.csv")
		coll := NewCSVCollection(path)
		require.NoError(t, coll.Save(ctx, models.RecordSet{}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		header := strings.SplitN(string(data), "\n", 2)[0]
		assert.True(t, strings.HasPrefix(header, "ID,User Type,Company Name"), header)

		set, err := coll.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("columns matched by name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.csv")
		content := "Company Name,Email,Plug In Module\nAcme,a@acme.io,\"Deposit Plugin, Shipment Plugin\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		set, err := NewCSVCollection(path).Load(ctx)
		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Equal(t, "Acme", set[0].CompanyName)
		assert.Equal(t, []string{"Deposit Plugin", "Shipment Plugin"}, set[0].PlugIns())
		assert.Empty(t, set[0].ID)
	})
}

func TestKVCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("load and save", func(t *testing.T) {
		stored := []byte("[]")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/form", r.URL.Path)
			switch r.Method {
			case http.MethodGet:
				w.Header().Set("Content-Type", "application/json")
				w.Write(stored)
			case http.MethodPost:
				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				stored = body
				w.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		coll := NewKVCollection(server.URL+"/", 0)
		set, err := coll.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, set)

		record, err := models.NewRecord(acmeFields())
		require.NoError(t, err)
		record.ID = "id-1"
		require.NoError(t, coll.Save(ctx, models.RecordSet{record}))

		var raw []map[string]string
		require.NoError(t, json.Unmarshal(stored, &raw))
		require.Len(t, raw, 1)
		assert.Equal(t, "Acme", raw[0]["Company Name"])

		set, err = coll.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.RecordSet{record}, set)
	})

	t.Run("errors are not swallowed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "worker unavailable", http.StatusBadGateway)
		}))
		defer server.Close()

		coll := NewKVCollection(server.URL, 0)
		_, err := coll.Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")

		err = coll.Save(ctx, models.RecordSet{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "worker unavailable")
	})
}

func TestDebtorRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDebtorRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`
		INSERT INTO Debtor (AccNo, CompanyName, Phone1, EmailAddress) VALUES
		('300-C001', 'Charlie Sdn Bhd', '03-111', 'c@charlie.my'),
		('300-A001', 'Alpha Trading', NULL, NULL),
		('300-B001', 'Bravo Enterprise', '03-222', NULL)
	`)
	require.NoError(t, err)

	debtors, err := repo.GetTop(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, debtors, 3)
	assert.Equal(t, "Alpha Trading", debtors[0].CompanyName)
	assert.Equal(t, "", debtors[0].Phone1)
	assert.Equal(t, "T", debtors[0].IsActive)
	assert.Equal(t, "Charlie Sdn Bhd", debtors[2].CompanyName)

	limited, err := repo.GetTop(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestKVRepository(t *testing.T) {
	repo := NewKVRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "form")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, repo.Put(ctx, "form", `[1]`))
	require.NoError(t, repo.Put(ctx, "form", `[2]`))

	value, err := repo.Get(ctx, "form")
	require.NoError(t, err)
	assert.Equal(t, `[2]`, value)
}

func TestAuditRepository(t *testing.T) {
	repo := NewAuditRepository(setupTestDB(t))
	ctx := context.Background()

	for _, path := range []string{"/records", "/records/action"} {
		entry := &models.AuditLogEntry{
			UserEmail:  "ops@example.com",
			Method:     http.MethodPost,
			Path:       path,
			StatusCode: http.StatusSeeOther,
		}
		require.NoError(t, repo.Create(ctx, entry))
		assert.NotZero(t, entry.ID)
	}

	entries, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/records/action", entries[0].Path)
	assert.Equal(t, http.StatusSeeOther, entries[0].StatusCode)
}
