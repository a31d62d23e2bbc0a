package migration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/cache"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/store"
	"github.com/ougirez/rtrw/internal/pkg/store/localstore"
)

// flakyRemote is a localstore that fails the n-th create (1-based) and can
// be marked unreachable.
type flakyRemote struct {
	*localstore.Store

	mx       sync.Mutex
	failAt   int
	calls    int
	probeErr error
	onCreate func(call int)
}

func (r *flakyRemote) Probe(ctx context.Context) error {
	if r.probeErr != nil {
		return r.probeErr
	}
	return r.Store.Probe(ctx)
}

func (r *flakyRemote) CreateBusiness(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	r.mx.Lock()
	r.calls++
	calls := r.calls
	r.mx.Unlock()

	if r.onCreate != nil {
		r.onCreate(calls)
	}
	if calls == r.failAt {
		return nil, fmt.Errorf("insert umkm: connection reset")
	}
	return r.Store.CreateBusiness(ctx, b)
}

func newRemote() *flakyRemote {
	return &flakyRemote{Store: localstore.New(cache.NewMemory(), localstore.DefaultKeys())}
}

func businesses(c cache.Cache) *Records {
	return localstore.New(c, localstore.DefaultKeys()).Businesses()
}

func seed(t *testing.T, c cache.Cache, names ...string) []domain.Business {
	t.Helper()

	records := make([]domain.Business, 0, len(names))
	for i, name := range names {
		records = append(records, domain.Business{
			ID:     fmt.Sprintf("local-%d", i),
			Name:   name,
			Status: domain.StatusActive,
		})
	}
	if err := cache.StoreList(context.Background(), c, constants.DefaultBusinessKey, records); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return records
}

var user = domain.Identity{ID: "u1", Role: domain.RoleUser, Region: "01"}

func TestMigrate_Success(t *testing.T) {
	ctx := context.Background()
	local := cache.NewMemory()
	seed(t, local, "A", "B", "C")
	remote := newRemote()

	svc := NewMigrationService(businesses(local), remote)

	pending, err := svc.Pending(ctx)
	if err != nil || pending != 3 {
		t.Fatalf("expected 3 pending, got %d (%v)", pending, err)
	}

	res, err := svc.Migrate(ctx, user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Transferred != 3 {
		t.Fatalf("expected 3 transferred, got %d", res.Transferred)
	}

	if _, err = local.Get(ctx, constants.DefaultBusinessKey); !errors.Is(err, cache.ErrMiss) {
		t.Fatalf("expected cache key to be cleared, got %v", err)
	}

	migrated, err := remote.ListBusinesses(ctx, store.FilterFor(user))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(migrated) != 3 {
		t.Fatalf("expected 3 remote records, got %d", len(migrated))
	}
	for i, b := range migrated {
		if b.Name != []string{"A", "B", "C"}[i] {
			t.Errorf("record %d: expected cache order, got %s", i, b.Name)
		}
		if b.ID == "" || b.ID == fmt.Sprintf("local-%d", i) {
			t.Errorf("record %d: expected a remote id, got %q", i, b.ID)
		}
		if b.Owner() != "u1" || b.Region != "01" {
			t.Errorf("record %d: expected owner u1 in RW 01, got %q/%q", i, b.Owner(), b.Region)
		}
	}
}

func TestMigrate_FailsFastAndKeepsCache(t *testing.T) {
	ctx := context.Background()
	local := cache.NewMemory()
	seed(t, local, "A", "B", "C")
	remote := newRemote()
	remote.failAt = 2

	svc := NewMigrationService(businesses(local), remote)

	res, err := svc.Migrate(ctx, user)
	if !errors.Is(err, constants.ErrMigrationFailed) {
		t.Fatalf("expected ErrMigrationFailed, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected no result, got %+v", res)
	}
	if remote.calls != 2 {
		t.Fatalf("expected the run to stop after the failed create, got %d calls", remote.calls)
	}

	left, err := cache.LoadList[domain.Business](ctx, local, constants.DefaultBusinessKey)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(left) != 3 || left[0].Name != "A" || left[1].Name != "B" || left[2].Name != "C" {
		t.Fatalf("expected cache to keep [A B C], got %+v", left)
	}

	// A is already remote: a retry duplicates it.
	migrated, _ := remote.ListBusinesses(ctx, store.FilterFor(user))
	if len(migrated) != 1 || migrated[0].Name != "A" {
		t.Fatalf("expected only A in the remote store, got %+v", migrated)
	}
}

func TestMigrate_EmptyCache(t *testing.T) {
	ctx := context.Background()
	local := cache.NewMemory()
	remote := newRemote()

	res, err := NewMigrationService(businesses(local), remote).Migrate(ctx, user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Transferred != 0 {
		t.Fatalf("expected 0 transferred, got %d", res.Transferred)
	}
	if remote.calls != 0 {
		t.Fatalf("expected no remote writes, got %d", remote.calls)
	}
}

func TestMigrate_RemoteUnavailable(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		remote Remote
	}{
		{name: "not configured", remote: nil},
		{name: "probe fails", remote: &flakyRemote{
			Store:    localstore.New(cache.NewMemory(), localstore.DefaultKeys()),
			probeErr: errors.New("dial tcp: connection refused"),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			local := cache.NewMemory()
			seed(t, local, "A")

			svc := NewMigrationService(businesses(local), tc.remote)
			if svc.Available(ctx) {
				t.Fatal("expected remote to be reported unavailable")
			}

			_, err := svc.Migrate(ctx, user)
			if !errors.Is(err, constants.ErrStoreUnavailable) {
				t.Fatalf("expected ErrStoreUnavailable, got %v", err)
			}

			if pending, _ := svc.Pending(ctx); pending != 1 {
				t.Fatalf("expected cache untouched, got %d pending", pending)
			}
		})
	}
}

func TestMigrate_KeepsExistingOwner(t *testing.T) {
	owner := "someone-else"
	got := prepare(domain.Business{ID: "x", OwnerID: &owner, Region: "04"}, user)

	if got.ID != "" {
		t.Errorf("expected id to be cleared, got %q", got.ID)
	}
	if got.Owner() != owner || got.Region != "04" {
		t.Errorf("expected owner and RW to be kept, got %q/%q", got.Owner(), got.Region)
	}
}

func TestMigrate_ConcurrentCallsSerialize(t *testing.T) {
	ctx := context.Background()
	local := cache.NewMemory()
	seed(t, local, "A", "B")
	remote := newRemote()
	svc := NewMigrationService(businesses(local), remote)

	var wg sync.WaitGroup
	results := make([]int, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.Migrate(ctx, user)
			if err != nil {
				t.Errorf("expected no error, got %v", err)
				return
			}
			results[i] = res.Transferred
		}(i)
	}
	wg.Wait()

	total := 0
	for _, n := range results {
		total += n
	}
	if total != 2 || remote.calls != 2 {
		t.Fatalf("expected records to be migrated exactly once, got %d transferred / %d creates", total, remote.calls)
	}
}

func TestMigrate_WritesDuringRunAreKept(t *testing.T) {
	ctx := context.Background()
	local := cache.NewMemory()
	seed(t, local, "A")
	records := businesses(local)

	started := make(chan struct{})
	release := make(chan struct{})
	remote := newRemote()
	remote.onCreate = func(int) {
		close(started)
		<-release
	}

	svc := NewMigrationService(records, remote)

	type outcome struct {
		res *Result
		err error
	}
	migrated := make(chan outcome, 1)
	go func() {
		res, err := svc.Migrate(ctx, user)
		migrated <- outcome{res: res, err: err}
	}()

	<-started
	inserted := make(chan error, 1)
	go func() {
		_, err := records.Insert(ctx, &domain.Business{Name: "IMPORTED", Status: domain.StatusActive})
		inserted <- err
	}()

	select {
	case err := <-inserted:
		t.Fatalf("expected insert to wait for the migration, returned %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	out := <-migrated
	if out.err != nil {
		t.Fatalf("expected no error, got %v", out.err)
	}
	if out.res.Transferred != 1 {
		t.Fatalf("expected 1 transferred, got %d", out.res.Transferred)
	}
	if err := <-inserted; err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	left, err := records.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(left) != 1 || left[0].Name != "IMPORTED" {
		t.Fatalf("expected the record written during the run to stay cached, got %+v", left)
	}

	remoteRecords, _ := remote.ListBusinesses(ctx, store.FilterFor(user))
	if len(remoteRecords) != 1 || remoteRecords[0].Name != "A" {
		t.Fatalf("expected only A in the remote store, got %+v", remoteRecords)
	}
}
