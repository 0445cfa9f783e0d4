package skycdkutil

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/iancoleman/strcase"
)

// Casing specifies how to format the identifier string.
type Casing int

const (
	// CasingCamel formats as CamelCase (e.g., "SkyappStagSiteBucket").
	CasingCamel Casing = iota
	// CasingLowerCamel formats as lowerCamelCase (e.g., "skyappStagSiteBucket").
	CasingLowerCamel
	// CasingSnake formats as snake_case (e.g., "skyapp_stag_site_bucket").
	CasingSnake
	// CasingScreamingSnake formats as SCREAMING_SNAKE_CASE (e.g., "SKYAPP_STAG_SITE_BUCKET").
	CasingScreamingSnake
	// CasingKebab formats as kebab-case (e.g., "skyapp-stag-site-bucket").
	CasingKebab
	// CasingScreamingKebab formats as SCREAMING-KEBAB-CASE (e.g., "SKYAPP-STAG-SITE-BUCKET").
	CasingScreamingKebab
)

// ResourceName generates a resource identifier prefixed with the stack's qualifier
// and deployment identifier. The label is a free-form string that the caller provides.
//
// The format is: "{qualifier}-{deploymentIdent}-{label}" converted to the specified casing.
//
// For shared stacks (no deployment identifier), the format is: "{qualifier}-{label}".
//
// Examples with qualifier "skyapp", deployment "Stag", label "SiteBucket":
//   - CasingCamel:          "SkyappStagSiteBucket"
//   - CasingLowerCamel:     "skyappStagSiteBucket"
//   - CasingSnake:          "skyapp_stag_site_bucket"
//   - CasingScreamingSnake: "SKYAPP_STAG_SITE_BUCKET"
//   - CasingKebab:          "skyapp-stag-site-bucket"
//   - CasingScreamingKebab: "SKYAPP-STAG-SITE-BUCKET"
func ResourceName(scope constructs.Construct, label string, casing Casing) string {
	qualifier := Qualifier(scope)
	deploymentIdent := DeploymentIdent(scope)

	var base string
	if deploymentIdent != "" {
		base = fmt.Sprintf("%s-%s-%s", qualifier, deploymentIdent, label)
	} else {
		base = fmt.Sprintf("%s-%s", qualifier, label)
	}

	return applyCasing(base, casing)
}

// ResourceNamePtr is ResourceName returning a jsii string pointer, for use
// directly inside CDK props structs.
func ResourceNamePtr(scope constructs.Construct, label string, casing Casing) *string {
	return jsii.String(ResourceName(scope, label, casing))
}

func applyCasing(s string, casing Casing) string {
	switch casing {
	case CasingCamel:
		return strcase.ToCamel(s)
	case CasingLowerCamel:
		return strcase.ToLowerCamel(s)
	case CasingSnake:
		return strcase.ToSnake(s)
	case CasingScreamingSnake:
		return strcase.ToScreamingSnake(s)
	case CasingKebab:
		return strcase.ToKebab(s)
	case CasingScreamingKebab:
		return strcase.ToScreamingKebab(s)
	default:
		return strcase.ToCamel(s)
	}
}
