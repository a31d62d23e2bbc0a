// Package xpgx runs squirrel builders against a pgx pool and scans rows
// into structs by their `db` tags.
package xpgx

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool interface {
	Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error)
	Selectx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error
	Getx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	*pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string, maxConns int32) (Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	return &pool{p}, nil
}

func (p *pool) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return p.Exec(ctx, sql, args...)
}

// Selectx scans every row into dst, which must be a pointer to a slice of
// structs or of struct pointers.
func (p *pool) Selectx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error {
	sliceVal := reflect.ValueOf(dst)
	if sliceVal.Kind() != reflect.Pointer || sliceVal.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("xpgx: Selectx expects pointer to slice, got %T", dst)
	}
	sliceVal = sliceVal.Elem()

	elemType := sliceVal.Type().Elem()
	isPtr := elemType.Kind() == reflect.Pointer
	structType := elemType
	if isPtr {
		structType = elemType.Elem()
	}

	rows, err := p.query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	out := reflect.MakeSlice(sliceVal.Type(), 0, 0)
	for rows.Next() {
		item := reflect.New(structType)
		if err := scanStruct(rows, item); err != nil {
			return err
		}
		if isPtr {
			out = reflect.Append(out, item)
		} else {
			out = reflect.Append(out, item.Elem())
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	sliceVal.Set(out)
	return nil
}

// Getx scans exactly one row into dst (pointer to struct). pgx.ErrNoRows is
// returned when the query yields nothing.
func (p *pool) Getx(ctx context.Context, dst interface{}, query squirrel.Sqlizer) error {
	val := reflect.ValueOf(dst)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: Getx expects pointer to struct, got %T", dst)
	}

	rows, err := p.query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}

	if err := scanStruct(rows, val); err != nil {
		return err
	}
	return rows.Err()
}

func (p *pool) query(ctx context.Context, query squirrel.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return p.Query(ctx, sql, args...)
}

func scanStruct(rows pgx.Rows, target reflect.Value) error {
	elem := target.Elem()
	fields := fieldsByTag(elem.Type())

	descs := rows.FieldDescriptions()
	dests := make([]interface{}, len(descs))
	for i, d := range descs {
		idx, ok := fields[d.Name]
		if !ok {
			var skip interface{}
			dests[i] = &skip
			continue
		}
		dests[i] = elem.FieldByIndex(idx).Addr().Interface()
	}

	return rows.Scan(dests...)
}

func fieldsByTag(t reflect.Type) map[string][]int {
	res := make(map[string][]int)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			for name, idx := range fieldsByTag(f.Type) {
				res[name] = append([]int{i}, idx...)
			}
			continue
		}
		tag := f.Tag.Get("db")
		if tag == "" || tag == "-" || !f.IsExported() {
			continue
		}
		res[tag] = []int{i}
	}
	return res
}
