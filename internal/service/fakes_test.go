package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/david-develop/files-manager/internal/domain"
)

// Фейки доменных контрактов для юнит-тестов сервисов.

type fakeUsers struct {
	byID map[domain.UserID]domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[domain.UserID]domain.User)}
}

func (f *fakeUsers) add(email string) domain.User {
	u := domain.User{ID: uuid.New(), Email: email, PassHash: "hash:" + email}
	f.byID[u.ID] = u
	return u
}

func (f *fakeUsers) Close() {}

func (f *fakeUsers) Ping(context.Context) error { return nil }

func (f *fakeUsers) CountUsers(context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeUsers) CreateUser(_ context.Context, email, passHash string) (domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return domain.User{}, domain.ErrAlreadyExists
		}
	}
	u := domain.User{ID: uuid.New(), Email: email, PassHash: passHash}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) UserByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUsers) UserByID(_ context.Context, id domain.UserID) (domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

type fakeFiles struct {
	files      []domain.File
	nextSeq    int64
	failCreate error
}

func (f *fakeFiles) CreateFile(_ context.Context, rec domain.File) (domain.File, error) {
	if f.failCreate != nil {
		return domain.File{}, f.failCreate
	}
	f.nextSeq++
	rec.ID = uuid.New()
	rec.Seq = f.nextSeq
	f.files = append(f.files, rec)
	return rec, nil
}

func (f *fakeFiles) FileByID(_ context.Context, id domain.FileID) (domain.File, error) {
	for _, rec := range f.files {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.File{}, domain.ErrNotFound
}

func (f *fakeFiles) OwnedFileByID(_ context.Context, id domain.FileID, owner domain.UserID) (domain.File, error) {
	for _, rec := range f.files {
		if rec.ID == id && rec.OwnerID == owner {
			return rec, nil
		}
	}
	return domain.File{}, domain.ErrNotFound
}

func (f *fakeFiles) ListFiles(_ context.Context, owner domain.UserID, parent domain.ParentRef, page int) ([]domain.File, error) {
	var match []domain.File
	for _, rec := range f.files {
		if rec.OwnerID != owner {
			continue
		}
		if sameParent(rec.Parent, parent) {
			match = append(match, rec)
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

func (f *fakeFiles) CountFiles(context.Context) (int64, error) { return int64(len(f.files)), nil }

func sameParent(a, b domain.ParentRef) bool {
	if a.IsRoot() || b.IsRoot() {
		return a.IsRoot() && b.IsRoot()
	}
	aid, _ := a.FolderID()
	bid, _ := b.FolderID()
	return aid == bid
}

type fakeBlobs struct {
	blobs   map[string][]byte
	failPut bool
}

func newFakeBlobs() *fakeBlobs { return &fakeBlobs{blobs: make(map[string][]byte)} }

func (f *fakeBlobs) Put(_ context.Context, data []byte) (string, error) {
	if f.failPut {
		return "", domain.ErrStorage
	}
	key := uuid.NewString()
	f.blobs[key] = data
	return key, nil
}

func (f *fakeBlobs) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := f.blobs[key]
	if !ok {
		return nil, errors.New("no such blob")
	}
	return b, nil
}

type fakeSessions struct {
	byToken map[string]domain.UserID
}

func newFakeSessions() *fakeSessions { return &fakeSessions{byToken: make(map[string]domain.UserID)} }

func (f *fakeSessions) issueFor(userID domain.UserID) string {
	token := uuid.NewString()
	f.byToken[token] = userID
	return token
}

func (f *fakeSessions) Issue(_ context.Context, userID domain.UserID) (string, error) {
	return f.issueFor(userID), nil
}

func (f *fakeSessions) Resolve(_ context.Context, token string) (domain.UserID, error) {
	if token == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, ok := f.byToken[token]
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

func (f *fakeSessions) Revoke(_ context.Context, token string) error {
	delete(f.byToken, token)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }
func (fakeHasher) Verify(plain, encoded string) (bool, error) {
	return encoded == "hash:"+plain, nil
}
