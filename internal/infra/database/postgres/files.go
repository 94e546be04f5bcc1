package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/david-develop/files-manager/internal/domain"
)

// Колонки таблицы files в порядке сканирования.
const fileColumns = "id, owner_id, name, type, is_public, parent_id, storage_key, seq, created_at"

func (r *PGRepo) CreateFile(ctx context.Context, f domain.File) (domain.File, error) {
	// parent_id: NULL для корня, storage_key: NULL для папок
	var parentID *domain.FileID
	if id, ok := f.Parent.FolderID(); ok {
		parentID = &id
	}
	var storageKey *string
	if f.StorageKey != "" {
		storageKey = &f.StorageKey
	}

	q := r.qb().Insert(fmt.Sprintf("%s.files", r.schema)).
		Columns("owner_id", "name", "type", "is_public", "parent_id", "storage_key").
		Values(f.OwnerID, f.Name, f.Type, f.IsPublic, parentID, storageKey).
		Suffix("RETURNING " + fileColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateFile", sqlStr, args)

	start := time.Now()
	out, err := scanFile(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("CreateFile scan error after %s: %v", time.Since(start), err)
		return domain.File{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	r.logger.Printf("CreateFile ok in %s id=%s type=%s name=%q", time.Since(start), out.ID, out.Type, out.Name)
	return out, nil
}

func (r *PGRepo) FileByID(ctx context.Context, id domain.FileID) (domain.File, error) {
	q := r.qb().Select(fileColumns).
		From(fmt.Sprintf("%s.files", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("FileByID", sqlStr, args)

	start := time.Now()
	f, err := scanFile(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.File{}, domain.ErrNotFound
		}
		r.logger.Printf("FileByID scan error after %s: %v", time.Since(start), err)
		return domain.File{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	r.logger.Printf("FileByID ok in %s id=%s", time.Since(start), f.ID)
	return f, nil
}

// OwnedFileByID: чужая запись неотличима от отсутствующей.
func (r *PGRepo) OwnedFileByID(ctx context.Context, id domain.FileID, owner domain.UserID) (domain.File, error) {
	q := r.qb().Select(fileColumns).
		From(fmt.Sprintf("%s.files", r.schema)).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"owner_id": owner}})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("OwnedFileByID", sqlStr, args)

	start := time.Now()
	f, err := scanFile(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.File{}, domain.ErrNotFound
		}
		r.logger.Printf("OwnedFileByID scan error after %s: %v", time.Since(start), err)
		return domain.File{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	r.logger.Printf("OwnedFileByID ok in %s id=%s", time.Since(start), f.ID)
	return f, nil
}

// ListFiles: страница записей владельца под parent в порядке вставки (seq).
// Фильтр всегда по нормализованному parent: корень — parent_id IS NULL.
func (r *PGRepo) ListFiles(ctx context.Context, owner domain.UserID, parent domain.ParentRef, page int) ([]domain.File, error) {
	if page < 0 {
		page = 0
	}

	sb := r.qb().Select(fileColumns).
		From(fmt.Sprintf("%s.files", r.schema)).
		Where(sq.Eq{"owner_id": owner})

	if id, ok := parent.FolderID(); ok {
		sb = sb.Where(sq.Eq{"parent_id": id})
	} else {
		sb = sb.Where(sq.Eq{"parent_id": nil})
	}

	sb = sb.OrderBy("seq ASC").
		Offset(uint64(page) * domain.PageSize).
		Limit(domain.PageSize)

	sqlStr, args, _ := sb.ToSql()
	r.logSQL("ListFiles", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("ListFiles query error after %s: %v", time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	defer rows.Close()

	res := make([]domain.File, 0, domain.PageSize)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			r.logger.Printf("ListFiles scan error: %v", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
		}
		res = append(res, f)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("ListFiles rows error: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	r.logger.Printf("ListFiles ok in %s count=%d page=%d", time.Since(start), len(res), page)
	return res, nil
}

func (r *PGRepo) CountFiles(ctx context.Context) (int64, error) {
	q := r.qb().Select("COUNT(*)").From(fmt.Sprintf("%s.files", r.schema))
	sqlStr, args, _ := q.ToSql()

	var n int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		r.logger.Printf("CountFiles error: %v", err)
		return 0, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return n, nil
}

func scanFile(row pgx.Row) (domain.File, error) {
	var (
		f          domain.File
		parentID   *domain.FileID
		storageKey *string
	)
	if err := row.Scan(
		&f.ID, &f.OwnerID, &f.Name, &f.Type, &f.IsPublic,
		&parentID, &storageKey, &f.Seq, &f.CreatedAt,
	); err != nil {
		return domain.File{}, err
	}
	if parentID != nil {
		f.Parent = domain.FolderParent(*parentID)
	} else {
		f.Parent = domain.RootParent()
	}
	if storageKey != nil {
		f.StorageKey = *storageKey
	}
	return f, nil
}
