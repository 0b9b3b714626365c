package pkg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anchore/packageurl-go"
)

const identifierSeparator = ":"

// Identifier uniquely names a software package within an advisor run: the package manager type (ecosystem),
// namespace (e.g. a Maven group or npm scope), name, and version. It is a comparable value and is used as a map key.
type Identifier struct {
	Type      string `json:"type" yaml:"type"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
}

// ParseIdentifier parses the "Type:Namespace:Name:Version" form of an identifier. Missing trailing components are
// left empty, and the version may itself contain the separator.
func ParseIdentifier(s string) (Identifier, error) {
	if strings.TrimSpace(s) == "" {
		return Identifier{}, fmt.Errorf("empty package identifier")
	}

	parts := strings.SplitN(s, identifierSeparator, 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}

	return Identifier{
		Type:      strings.TrimSpace(parts[0]),
		Namespace: strings.TrimSpace(parts[1]),
		Name:      strings.TrimSpace(parts[2]),
		Version:   strings.TrimSpace(parts[3]),
	}, nil
}

// MustParseIdentifier is like ParseIdentifier but panics on invalid input.
func MustParseIdentifier(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the "Type:Namespace:Name:Version" form of the identifier.
func (i Identifier) String() string {
	return strings.Join([]string{i.Type, i.Namespace, i.Name, i.Version}, identifierSeparator)
}

// IsEmpty reports whether no component of the identifier is set.
func (i Identifier) IsEmpty() bool {
	return i == Identifier{}
}

// Less orders identifiers by type (case-insensitive), namespace, name and version.
func (i Identifier) Less(other Identifier) bool {
	if a, b := strings.ToLower(i.Type), strings.ToLower(other.Type); a != b {
		return a < b
	}
	if i.Namespace != other.Namespace {
		return i.Namespace < other.Namespace
	}
	if i.Name != other.Name {
		return i.Name < other.Name
	}
	return i.Version < other.Version
}

// MarshalText renders the identifier in its string form.
func (i Identifier) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses the string form of an identifier.
func (i *Identifier) UnmarshalText(text []byte) error {
	id, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}
	*i = id
	return nil
}

// purlTypes maps package manager types to their package URL type where the two differ beyond case.
var purlTypes = map[string]string{
	"bundler":   "gem",
	"cargo":     "cargo",
	"crate":     "cargo",
	"go":        "golang",
	"godep":     "golang",
	"gomod":     "golang",
	"gradle":    "maven",
	"pip":       "pypi",
	"pipenv":    "pypi",
	"poetry":    "pypi",
	"sbt":       "maven",
	"yarn":      "npm",
	"yarn2":     "npm",
	"pnpm":      "npm",
	"spm":       "swift",
	"carthage":  "carthage",
	"cocoapods": "cocoapods",
}

// PurlType returns the package URL type for the identifier's package manager type.
func (i Identifier) PurlType() string {
	t := strings.ToLower(i.Type)
	if mapped, ok := purlTypes[t]; ok {
		return mapped
	}
	return t
}

// PackageURL renders the identifier as a package URL (purl). Empty identifiers yield an empty string.
func (i Identifier) PackageURL() string {
	if i.IsEmpty() {
		return ""
	}
	return packageurl.NewPackageURL(i.PurlType(), i.Namespace, i.Name, i.Version, nil, "").ToString()
}

// SortIdentifiers sorts the given identifiers in place according to Identifier.Less.
func SortIdentifiers(ids []Identifier) {
	sort.SliceStable(ids, func(a, b int) bool {
		return ids[a].Less(ids[b])
	})
}
