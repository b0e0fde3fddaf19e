package statusmap

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"vcheck.dev/verrors/apis"
	"vcheck.dev/verrors/kind"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(k kind.Kind, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(k)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				k, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(kind.EmptyValue, 400, codes.InvalidArgument)
	check(kind.ValueOutOfRange, 400, codes.OutOfRange)
	check(kind.ItemNotFound, 404, codes.NotFound)
	check(kind.OperationAborted, 409, codes.Aborted)
	check(kind.ItemNulls, 400, codes.InvalidArgument)
}

func TestDefaults_CoverEveryKind(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, k := range kind.All() {
		st := m.Status(k)
		if st.HTTP == 0 || st.GRPC == codes.OK {
			t.Fatalf("kind %q resolved to a hole: %+v", k, st)
		}
	}
}

func TestPriority_OverrideOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.ItemNotFound, 410),
		WithHTTPOverride(kind.ItemNotFound, 418),
		WithGRPCOverride(kind.ItemNotFound, int(codes.FailedPrecondition)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.ItemNotFound)
	if st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
	if st.GRPC != codes.FailedPrecondition {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.FailedPrecondition)
	}
}

func TestDefaultAdjustment(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.OperationAborted, http.StatusLocked),
		WithGRPCDefault(kind.OperationAborted, int(codes.Canceled)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.OperationAborted)
	if st.HTTP != http.StatusLocked || st.GRPC != codes.Canceled {
		t.Fatalf("adjusted default not used: %+v", st)
	}
}

func TestFallback_UnknownKind(t *testing.T) {
	// Lookups never fail: a kind outside the configured set resolves to the
	// client-error fallback. Validation keeps such kinds out of the rules,
	// not out of the lookups.
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(kind.Kind("bogus"))
	if st.HTTP != 400 || st.GRPC != codes.InvalidArgument {
		t.Fatalf("fallback not applied: %+v", st)
	}
}

func TestNew_RejectsInvalidKindInRules(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"http default", WithHTTPDefault(kind.Kind("bogus"), 500)},
		{"grpc default", WithGRPCDefault(kind.Kind("bogus"), int(codes.Internal))},
		{"http override", WithHTTPOverride(kind.Kind(""), 500)},
		{"grpc override", WithGRPCOverride(kind.Kind("nope"), int(codes.Internal))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatal("New must reject rules for invalid kinds")
			}
		})
	}
}

func TestImmutability_OptionsAfterBuild(t *testing.T) {
	override := WithHTTPOverride(kind.EmptyValue, 499)
	m, err := New(override)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// A second mapper built without the override must not see it.
	m2, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.HTTPStatus(kind.EmptyValue) != 499 {
		t.Fatal("first mapper lost its override")
	}
	if m2.HTTPStatus(kind.EmptyValue) != 400 {
		t.Fatal("second mapper leaked the first mapper's override")
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(
		WithHTTPOverride(kind.EmptyValue, 422),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	exp := m.Explain(kind.EmptyValue)
	if !strings.Contains(exp, "source=override") {
		t.Fatalf("Explain must include source=override:\n%s", exp)
	}
	if !strings.Contains(exp, "http:") || !strings.Contains(exp, "grpc:") {
		t.Fatalf("Explain must render both transports:\n%s", exp)
	}

	exp = m.Explain(kind.ItemNotFound)
	if !strings.Contains(exp, "source=default") {
		t.Fatalf("Explain must include source=default:\n%s", exp)
	}

	exp = m.Explain(kind.Kind("bogus"))
	if !strings.Contains(exp, "source=fallback") {
		t.Fatalf("Explain must include source=fallback:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPOverride(kind.EmptyValue, 422),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(kind.EmptyValue)
				_ = m.Status(kind.ItemNotFound)
				_ = m.Status(kind.OperationAborted)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m, _ := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.EmptyValue)
	}
}

func BenchmarkMapperStatus_Override(b *testing.B) {
	m, _ := New(
		WithHTTPOverride(kind.EmptyValue, 422),
		WithGRPCOverride(kind.EmptyValue, int(codes.FailedPrecondition)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.EmptyValue)
	}
}

// Ensure mapper implements apis.StatusMapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.StatusMapper = (*mapper)(nil)
}
