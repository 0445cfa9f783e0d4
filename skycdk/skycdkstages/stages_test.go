//nolint:paralleltest // jsii runtime doesn't support parallel tests
package skycdkstages_test

import (
	"strings"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/cockroachdb/errors"
	"github.com/skylifthq/skyapp/skycdk/skycdkstages"
)

// testConfig is the global configuration used by the tests. Units are
// enabled by listing their component names.
type testConfig struct {
	Enabled map[string]bool
}

type testUnit struct {
	Component string
	Props     skycdkstages.Props[testConfig]
}

func enabledIn(cfg testConfig, component string) bool {
	return cfg.Enabled[component]
}

// reg builds a registration whose factory records the props it was called
// with, so tests can assert on the merged construction context.
func reg(component string, deps []string, calls *[]testUnit) skycdkstages.Registration[testConfig] {
	return skycdkstages.Registration[testConfig]{
		Component: component,
		Enabled:   func(cfg testConfig) bool { return enabledIn(cfg, component) },
		DependsOn: deps,
		Build: func(props skycdkstages.Props[testConfig]) (skycdkstages.Handle, error) {
			unit := testUnit{Component: component, Props: props}
			if calls != nil {
				*calls = append(*calls, unit)
			}
			return &unit, nil
		},
	}
}

func identityNamer(component string) string { return component }

func resolve(
	t *testing.T, cfg testConfig, regs []skycdkstages.Registration[testConfig],
) (*skycdkstages.Registry, error) {
	t.Helper()
	return skycdkstages.ResolveNamed(nil, cfg, identityNamer, regs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		regs        []skycdkstages.Registration[testConfig]
		wantErr     bool
		errContains []string
	}{
		{
			name: "valid list with deps",
			regs: []skycdkstages.Registration[testConfig]{
				reg("A", nil, nil),
				reg("B", nil, nil),
				reg("C", []string{"A", "B"}, nil),
			},
		},
		{
			name: "empty list",
			regs: nil,
		},
		{
			name: "duplicate component",
			regs: []skycdkstages.Registration[testConfig]{
				reg("A", nil, nil),
				reg("C", []string{"A"}, nil),
				reg("A", nil, nil),
			},
			wantErr:     true,
			errContains: []string{"duplicate component name", `"A"`},
		},
		{
			name: "unregistered dependency",
			regs: []skycdkstages.Registration[testConfig]{
				reg("A", nil, nil),
				reg("B", []string{"Missing"}, nil),
			},
			wantErr:     true,
			errContains: []string{`"B"`, `"Missing"`, "not registered"},
		},
		{
			name: "dependency registered after dependent",
			regs: []skycdkstages.Registration[testConfig]{
				reg("C", []string{"A"}, nil),
				reg("A", nil, nil),
			},
			wantErr:     true,
			errContains: []string{`"C"`, `"A"`, "registered after it"},
		},
		{
			name: "self dependency",
			regs: []skycdkstages.Registration[testConfig]{
				reg("A", []string{"A"}, nil),
			},
			wantErr:     true,
			errContains: []string{`"A"`, "registered after it"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := skycdkstages.Validate(tt.regs)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, skycdkstages.ErrConfiguration) {
				t.Errorf("error %v is not marked ErrConfiguration", err)
			}
			for _, want := range tt.errContains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not contain %q", err, want)
				}
			}
		})
	}
}

func TestResolve_EnabledDisabledScenario(t *testing.T) {
	// A enabled, B disabled, C enabled and depending on A.
	var calls []testUnit
	regs := []skycdkstages.Registration[testConfig]{
		reg("A", nil, &calls),
		reg("B", nil, &calls),
		reg("C", []string{"A"}, &calls),
	}
	cfg := testConfig{Enabled: map[string]bool{"A": true, "C": true}}

	registry, err := resolve(t, cfg, regs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if got := registry.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	wantOrder := []string{"A", "B", "C"}
	for i, component := range registry.Components() {
		if component != wantOrder[i] {
			t.Errorf("Components()[%d] = %q, want %q", i, component, wantOrder[i])
		}
	}

	if !registry.IsCreated("A") {
		t.Error("A should be created")
	}
	if registry.IsCreated("B") {
		t.Error("B should not be created")
	}
	if !registry.IsCreated("C") {
		t.Error("C should be created")
	}

	if _, ok := registry.Handle("B"); ok {
		t.Error("Handle(B) should report not created")
	}
	res, ok := registry.Result("B")
	if !ok || res.Created || res.Handle != nil {
		t.Errorf("Result(B) = %+v, %v; want present, not created, nil handle", res, ok)
	}

	// C's factory must have received exactly A's handle.
	aHandle, ok := registry.Handle("A")
	if !ok {
		t.Fatal("Handle(A) missing")
	}
	cCall := calls[len(calls)-1]
	if cCall.Component != "C" {
		t.Fatalf("last factory call = %q, want C", cCall.Component)
	}
	if len(cCall.Props.DependencyHandles) != 1 {
		t.Fatalf("C received %d handles, want 1", len(cCall.Props.DependencyHandles))
	}
	if cCall.Props.DependencyHandles["A"] != aHandle {
		t.Error("C's dependency handle for A is not A's registry handle")
	}
	if len(cCall.Props.Dependencies) != 1 || cCall.Props.Dependencies[0] != aHandle {
		t.Error("C's ordered dependencies should be exactly [A's handle]")
	}
}

func TestResolve_DisabledDependencyFails(t *testing.T) {
	regs := []skycdkstages.Registration[testConfig]{
		reg("A", nil, nil),
		reg("B", []string{"A"}, nil),
	}
	cfg := testConfig{Enabled: map[string]bool{"B": true}}

	registry, err := resolve(t, cfg, regs)
	if err == nil {
		t.Fatal("resolve should fail when B depends on disabled A")
	}
	if registry != nil {
		t.Error("no registry should be returned on failure")
	}
	if !errors.Is(err, skycdkstages.ErrConfiguration) {
		t.Errorf("error %v is not marked ErrConfiguration", err)
	}
	for _, want := range []string{`"B"`, `"A"`, "not created"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err, want)
		}
	}
}

func TestResolve_DisabledDependentIgnoresDisabledDependency(t *testing.T) {
	// B depends on disabled A, but B is itself disabled: not an error.
	regs := []skycdkstages.Registration[testConfig]{
		reg("A", nil, nil),
		reg("B", []string{"A"}, nil),
	}
	cfg := testConfig{Enabled: map[string]bool{}}

	registry, err := resolve(t, cfg, regs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if registry.IsCreated("A") || registry.IsCreated("B") {
		t.Error("nothing should be created")
	}
	if got := registry.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestResolve_ExtraPropsReceivesDeclaredHandles(t *testing.T) {
	var calls []testUnit
	var extraDeps skycdkstages.Handles
	regs := []skycdkstages.Registration[testConfig]{
		reg("A", nil, &calls),
		reg("B", nil, &calls),
		{
			Component: "C",
			DependsOn: []string{"A"},
			ExtraProps: func(cfg testConfig, deps skycdkstages.Handles) map[string]any {
				extraDeps = deps
				return map[string]any{"origin": deps["A"]}
			},
			Build: func(props skycdkstages.Props[testConfig]) (skycdkstages.Handle, error) {
				unit := testUnit{Component: "C", Props: props}
				calls = append(calls, unit)
				return &unit, nil
			},
		},
	}
	cfg := testConfig{Enabled: map[string]bool{"A": true, "B": true}}

	registry, err := resolve(t, cfg, regs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// ExtraProps saw A's handle and nothing else, even though B exists.
	if len(extraDeps) != 1 {
		t.Fatalf("ExtraProps received %d handles, want 1", len(extraDeps))
	}
	aHandle, _ := registry.Handle("A")
	if extraDeps["A"] != aHandle {
		t.Error("ExtraProps handle for A is not A's registry handle")
	}

	// The factory received the ExtraProps output.
	cCall := calls[len(calls)-1]
	if cCall.Props.Extra["origin"] != aHandle {
		t.Errorf("Extra[origin] = %v, want A's handle", cCall.Props.Extra["origin"])
	}
}

func TestResolve_FactoryErrorPropagatesVerbatim(t *testing.T) {
	sentinel := errors.New("bucket construction failed")
	regs := []skycdkstages.Registration[testConfig]{
		reg("A", nil, nil),
		{
			Component: "Broken",
			Build: func(props skycdkstages.Props[testConfig]) (skycdkstages.Handle, error) {
				return nil, sentinel
			},
		},
	}
	cfg := testConfig{Enabled: map[string]bool{"A": true}}

	_, err := resolve(t, cfg, regs)
	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want the factory's own error", err)
	}
	if errors.Is(err, skycdkstages.ErrConfiguration) {
		t.Error("factory errors must not be marked ErrConfiguration")
	}
}

func TestResolve_NilEnabledMeansEnabled(t *testing.T) {
	regs := []skycdkstages.Registration[testConfig]{
		{
			Component: "Always",
			Build: func(props skycdkstages.Props[testConfig]) (skycdkstages.Handle, error) {
				return "built", nil
			},
		},
	}

	registry, err := resolve(t, testConfig{}, regs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !registry.IsCreated("Always") {
		t.Error("unit without Enabled predicate should be created")
	}
}

func TestResolve_Idempotence(t *testing.T) {
	regs := []skycdkstages.Registration[testConfig]{
		reg("A", nil, nil),
		reg("B", nil, nil),
		reg("C", []string{"A"}, nil),
	}
	cfg := testConfig{Enabled: map[string]bool{"A": true, "C": true}}

	first, err := resolve(t, cfg, regs)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := resolve(t, cfg, regs)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for _, component := range first.Components() {
		a, _ := first.Result(component)
		b, _ := second.Result(component)
		if a.Created != b.Created {
			t.Errorf("%s: created %v vs %v", component, a.Created, b.Created)
		}
		if a.CanonicalName != b.CanonicalName {
			t.Errorf("%s: canonical name %q vs %q", component, a.CanonicalName, b.CanonicalName)
		}
	}
}

func TestResolve_CanonicalNames(t *testing.T) {
	regs := []skycdkstages.Registration[testConfig]{
		reg("SiteBucket", nil, nil),
	}
	cfg := testConfig{Enabled: map[string]bool{"SiteBucket": true}}

	registry, err := skycdkstages.ResolveNamed(nil, cfg, func(component string) string {
		return "skyapp-" + component
	}, regs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	res, _ := registry.Result("SiteBucket")
	if res.CanonicalName != "skyapp-SiteBucket" {
		t.Errorf("CanonicalName = %q, want %q", res.CanonicalName, "skyapp-SiteBucket")
	}
}

func TestResolve_DefaultNamerUsesScopeID(t *testing.T) {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("skyappUse1Stag"), nil)

	regs := []skycdkstages.Registration[testConfig]{
		reg("Cdn", nil, nil),
	}
	cfg := testConfig{Enabled: map[string]bool{"Cdn": true}}

	registry, err := skycdkstages.Resolve(stack, cfg, regs)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	res, _ := registry.Result("Cdn")
	if res.CanonicalName != "SkyappUse1StagCdn" {
		t.Errorf("CanonicalName = %q, want %q", res.CanonicalName, "SkyappUse1StagCdn")
	}
}

func TestResolve_ValidationFailsBeforeConstruction(t *testing.T) {
	var calls []testUnit
	regs := []skycdkstages.Registration[testConfig]{
		reg("A", nil, &calls),
		reg("C", []string{"A"}, &calls),
		reg("A", nil, &calls),
	}
	cfg := testConfig{Enabled: map[string]bool{"A": true, "C": true}}

	_, err := resolve(t, cfg, regs)
	if err == nil {
		t.Fatal("resolve should fail on duplicate component")
	}
	if !strings.Contains(err.Error(), "duplicate component name") {
		t.Errorf("error %q should name the duplicate rule", err)
	}
	if len(calls) != 0 {
		t.Errorf("no factory should run before validation passes, got %d calls", len(calls))
	}
}
