package files

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/david-develop/files-manager/internal/domain"
	"github.com/david-develop/files-manager/internal/service"
)

// Минимальные фейки доменных контрактов: хендлеры гоняем через настоящий
// сервис, подменяя только хранилища.

type memUsers struct{ byID map[domain.UserID]domain.User }

func (m *memUsers) Close() {}

func (m *memUsers) Ping(context.Context) error { return nil }

func (m *memUsers) CountUsers(context.Context) (int64, error) {
	return int64(len(m.byID)), nil
}

func (m *memUsers) CreateUser(_ context.Context, email, hash string) (domain.User, error) {
	u := domain.User{ID: uuid.New(), Email: email, PassHash: hash}
	m.byID[u.ID] = u
	return u, nil
}
func (m *memUsers) UserByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}
func (m *memUsers) UserByID(_ context.Context, id domain.UserID) (domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

type memFiles struct {
	recs []domain.File
	seq  int64
}

func (m *memFiles) CreateFile(_ context.Context, f domain.File) (domain.File, error) {
	m.seq++
	f.ID = uuid.New()
	f.Seq = m.seq
	m.recs = append(m.recs, f)
	return f, nil
}
func (m *memFiles) FileByID(_ context.Context, id domain.FileID) (domain.File, error) {
	for _, f := range m.recs {
		if f.ID == id {
			return f, nil
		}
	}
	return domain.File{}, domain.ErrNotFound
}
func (m *memFiles) OwnedFileByID(_ context.Context, id domain.FileID, owner domain.UserID) (domain.File, error) {
	for _, f := range m.recs {
		if f.ID == id && f.OwnerID == owner {
			return f, nil
		}
	}
	return domain.File{}, domain.ErrNotFound
}
func (m *memFiles) ListFiles(_ context.Context, owner domain.UserID, parent domain.ParentRef, page int) ([]domain.File, error) {
	var match []domain.File
	for _, f := range m.recs {
		if f.OwnerID != owner {
			continue
		}
		pid, pok := f.Parent.FolderID()
		qid, qok := parent.FolderID()
		if (pok == qok) && (!pok || pid == qid) {
			match = append(match, f)
		}
	}
	sort.Slice(match, func(i, j int) bool { return match[i].Seq < match[j].Seq })
	from := page * domain.PageSize
	if from >= len(match) {
		return nil, nil
	}
	to := from + domain.PageSize
	if to > len(match) {
		to = len(match)
	}
	return match[from:to], nil
}
func (m *memFiles) CountFiles(context.Context) (int64, error) { return int64(len(m.recs)), nil }

type memBlobs struct{ data map[string][]byte }

func (m *memBlobs) Put(_ context.Context, b []byte) (string, error) {
	key := uuid.NewString()
	m.data[key] = b
	return key, nil
}
func (m *memBlobs) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("no blob %s", key)
	}
	return b, nil
}

type memSessions struct{ byToken map[string]domain.UserID }

func (m *memSessions) Issue(_ context.Context, id domain.UserID) (string, error) {
	tok := uuid.NewString()
	m.byToken[tok] = id
	return tok, nil
}
func (m *memSessions) Resolve(_ context.Context, token string) (domain.UserID, error) {
	if token == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, ok := m.byToken[token]
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
func (m *memSessions) Revoke(_ context.Context, token string) error {
	delete(m.byToken, token)
	return nil
}

type fixture struct {
	mux      *http.ServeMux
	users    *memUsers
	files    *memFiles
	blobs    *memBlobs
	sessions *memSessions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{
		users:    &memUsers{byID: make(map[domain.UserID]domain.User)},
		files:    &memFiles{},
		blobs:    &memBlobs{data: make(map[string][]byte)},
		sessions: &memSessions{byToken: make(map[string]domain.UserID)},
	}
	logger := log.New(io.Discard, "", 0)
	h := &Handler{
		Log:   logger,
		Files: service.NewFiles(logger, fx.users, fx.files, fx.blobs, fx.sessions),
	}
	fx.mux = http.NewServeMux()
	fx.mux.HandleFunc("POST /files", h.Upload)
	fx.mux.HandleFunc("GET /files", h.GetIndex)
	fx.mux.HandleFunc("GET /files/{id}", h.GetShow)
	return fx
}

func (fx *fixture) newUser(t *testing.T, email string) (domain.User, string) {
	t.Helper()
	u, err := fx.users.CreateUser(context.Background(), email, "hash")
	require.NoError(t, err)
	tok, err := fx.sessions.Issue(context.Background(), u.ID)
	require.NoError(t, err)
	return u, tok
}

func (fx *fixture) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rdr)
	if token != "" {
		req.Header.Set("X-Token", token)
	}
	rec := httptest.NewRecorder()
	fx.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestUploadFolder(t *testing.T) {
	fx := newFixture(t)
	u, token := fx.newUser(t, "bob@dylan.com")

	rec := fx.do(t, http.MethodPost, "/files", token,
		map[string]any{"name": "Docs", "type": "folder"})
	require.Equal(t, http.StatusCreated, rec.Code)

	out := decodeBody[map[string]any](t, rec)
	require.Equal(t, u.ID.String(), out["userId"])
	require.Equal(t, "Docs", out["name"])
	require.Equal(t, "folder", out["type"])
	require.Equal(t, false, out["isPublic"])
	require.Equal(t, float64(0), out["parentId"]) // корень — числовой 0
	require.NotEmpty(t, out["id"])
	require.NotContains(t, out, "localPath")
	require.NotContains(t, out, "storageKey")
}

func TestUploadFileIntoFolder(t *testing.T) {
	fx := newFixture(t)
	_, token := fx.newUser(t, "bob@dylan.com")

	rec := fx.do(t, http.MethodPost, "/files", token,
		map[string]any{"name": "Docs", "type": "folder"})
	require.Equal(t, http.StatusCreated, rec.Code)
	folder := decodeBody[map[string]any](t, rec)

	rec = fx.do(t, http.MethodPost, "/files", token, map[string]any{
		"name":     "a.txt",
		"type":     "file",
		"parentId": folder["id"],
		"data":     base64.StdEncoding.EncodeToString([]byte("hi")),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	out := decodeBody[map[string]any](t, rec)
	require.Equal(t, "a.txt", out["name"])
	require.Equal(t, "file", out["type"])
	require.Equal(t, folder["id"], out["parentId"])

	// содержимое блоба — ровно декодированный payload
	require.Len(t, fx.blobs.data, 1)
	for _, b := range fx.blobs.data {
		require.Equal(t, []byte("hi"), b)
	}
}

func TestUploadValidationErrors(t *testing.T) {
	fx := newFixture(t)
	_, token := fx.newUser(t, "bob@dylan.com")

	rec := fx.do(t, http.MethodPost, "/files", token,
		map[string]any{"name": "a.txt", "type": "file",
			"data": base64.StdEncoding.EncodeToString([]byte("hi"))})
	require.Equal(t, http.StatusCreated, rec.Code)
	file := decodeBody[map[string]any](t, rec)

	tests := []struct {
		name     string
		body     map[string]any
		wantMsg  string
		wantCode int
	}{
		{
			name:     "missing name",
			body:     map[string]any{"type": "folder"},
			wantMsg:  "Missing name",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing type",
			body:     map[string]any{"name": "x"},
			wantMsg:  "Missing type",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing data",
			body:     map[string]any{"name": "x", "type": "file"},
			wantMsg:  "Missing data",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid base64",
			body: map[string]any{"name": "x", "type": "file",
				"data": "%%%"},
			wantMsg:  "Invalid data",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "parent not found",
			body: map[string]any{"name": "x", "type": "folder",
				"parentId": uuid.NewString()},
			wantMsg:  "Parent not found",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "parent is not a folder",
			body: map[string]any{"name": "x", "type": "folder",
				"parentId": file["id"]},
			wantMsg:  "Parent is not a folder",
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := fx.do(t, http.MethodPost, "/files", token, tc.body)
			require.Equal(t, tc.wantCode, rec.Code)
			out := decodeBody[map[string]string](t, rec)
			require.Equal(t, tc.wantMsg, out["error"])
		})
	}
}

func TestEveryOperationRequiresToken(t *testing.T) {
	fx := newFixture(t)

	targets := []struct {
		method string
		target string
		body   any
	}{
		{http.MethodPost, "/files", map[string]any{"name": "Docs", "type": "folder"}},
		{http.MethodGet, "/files", nil},
		{http.MethodGet, "/files/" + uuid.NewString(), nil},
	}
	for _, tc := range targets {
		rec := fx.do(t, tc.method, tc.target, "", tc.body)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
		out := decodeBody[map[string]string](t, rec)
		require.Equal(t, "Unauthorized", out["error"])
	}

	// мусорный токен — тот же ответ
	rec := fx.do(t, http.MethodGet, "/files", "bogus", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetShowHidesForeign(t *testing.T) {
	fx := newFixture(t)
	_, ownerToken := fx.newUser(t, "bob@dylan.com")
	_, strangerToken := fx.newUser(t, "eve@dylan.com")

	rec := fx.do(t, http.MethodPost, "/files", ownerToken,
		map[string]any{"name": "Docs", "type": "folder"})
	require.Equal(t, http.StatusCreated, rec.Code)
	folder := decodeBody[map[string]any](t, rec)

	rec = fx.do(t, http.MethodGet, "/files/"+folder["id"].(string), ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody[map[string]any](t, rec)
	require.Equal(t, folder["id"], out["id"])
	require.Equal(t, "Docs", out["name"])

	// для чужого пользователя записи не существует
	rec = fx.do(t, http.MethodGet, "/files/"+folder["id"].(string), strangerToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	errOut := decodeBody[map[string]string](t, rec)
	require.Equal(t, "Not found", errOut["error"])
}

func TestGetIndexPagination(t *testing.T) {
	fx := newFixture(t)
	_, token := fx.newUser(t, "bob@dylan.com")

	for i := 0; i < 25; i++ {
		rec := fx.do(t, http.MethodPost, "/files", token,
			map[string]any{"name": fmt.Sprintf("rec-%02d", i), "type": "folder"})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := fx.do(t, http.MethodGet, "/files?parentId=0&page=0", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page0 := decodeBody[[]map[string]any](t, rec)
	require.Len(t, page0, 20)
	for i, v := range page0 {
		require.Equal(t, fmt.Sprintf("rec-%02d", i), v["name"])
	}

	rec = fx.do(t, http.MethodGet, "/files?parentId=0&page=1", token, nil)
	page1 := decodeBody[[]map[string]any](t, rec)
	require.Len(t, page1, 5)
	for i, v := range page1 {
		require.Equal(t, fmt.Sprintf("rec-%02d", 20+i), v["name"])
	}

	// нечисловой page — нулевая страница
	rec = fx.do(t, http.MethodGet, "/files?page=abc", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]map[string]any](t, rec), 20)
}

func TestGetIndexUnknownParentIsEmptyPage(t *testing.T) {
	fx := newFixture(t)
	_, token := fx.newUser(t, "bob@dylan.com")

	rec := fx.do(t, http.MethodGet, "/files?parentId="+uuid.NewString(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]\n", rec.Body.String()) // именно пустой массив, не null
}
