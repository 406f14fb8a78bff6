package maven

import (
	"reflect"
	"testing"

	"github.com/matzehuels/mavenviz/pkg/errors"
)

func TestParseDependencies(t *testing.T) {
	tests := []struct {
		name string
		pom  string
		want []Dependency
	}{
		{
			name: "defaults applied",
			pom: `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId></dependency>
  </dependencies>
</project>`,
			want: []Dependency{{GroupID: "junit", ArtifactID: "junit", Version: "N/A", Scope: "compile"}},
		},
		{
			name: "explicit fields",
			pom: `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency>
      <groupId>org.mockito</groupId>
      <artifactId>mockito-core</artifactId>
      <version>4.0.0</version>
      <scope>test</scope>
    </dependency>
  </dependencies>
</project>`,
			want: []Dependency{{GroupID: "org.mockito", ArtifactID: "mockito-core", Version: "4.0.0", Scope: "test"}},
		},
		{
			name: "no dependency list",
			pom:  `<project xmlns="http://maven.apache.org/POM/4.0.0"><artifactId>solo</artifactId></project>`,
			want: []Dependency{},
		},
		{
			name: "empty dependency list",
			pom:  `<project xmlns="http://maven.apache.org/POM/4.0.0"><dependencies/></project>`,
			want: []Dependency{},
		},
		{
			name: "incomplete entries skipped",
			pom: `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency><artifactId>orphan</artifactId></dependency>
    <dependency><groupId>org.a</groupId><artifactId>  </artifactId></dependency>
    <dependency><groupId>org.b</groupId><artifactId>b</artifactId></dependency>
  </dependencies>
</project>`,
			want: []Dependency{{GroupID: "org.b", ArtifactID: "b", Version: "N/A", Scope: "compile"}},
		},
		{
			name: "whitespace trimmed",
			pom: `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency>
      <groupId>
        org.c
      </groupId>
      <artifactId> c </artifactId>
      <version> 1.2 </version>
      <scope>   </scope>
    </dependency>
  </dependencies>
</project>`,
			want: []Dependency{{GroupID: "org.c", ArtifactID: "c", Version: "1.2", Scope: "compile"}},
		},
		{
			name: "document order kept",
			pom: `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency><groupId>z</groupId><artifactId>z</artifactId></dependency>
    <dependency><groupId>a</groupId><artifactId>a</artifactId></dependency>
    <dependency><groupId>m</groupId><artifactId>m</artifactId></dependency>
  </dependencies>
</project>`,
			want: []Dependency{
				{GroupID: "z", ArtifactID: "z", Version: "N/A", Scope: "compile"},
				{GroupID: "a", ArtifactID: "a", Version: "N/A", Scope: "compile"},
				{GroupID: "m", ArtifactID: "m", Version: "N/A", Scope: "compile"},
			},
		},
		{
			name: "first list in document order wins",
			pom: `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencyManagement>
    <dependencies>
      <dependency><groupId>managed</groupId><artifactId>managed</artifactId><version>9</version></dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency><groupId>direct</groupId><artifactId>direct</artifactId><version>1</version></dependency>
  </dependencies>
</project>`,
			want: []Dependency{{GroupID: "managed", ArtifactID: "managed", Version: "9", Scope: "compile"}},
		},
		{
			name: "project list before management section",
			pom: `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency><groupId>direct</groupId><artifactId>direct</artifactId><version>1</version></dependency>
  </dependencies>
  <dependencyManagement>
    <dependencies>
      <dependency><groupId>managed</groupId><artifactId>managed</artifactId><version>9</version></dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
			want: []Dependency{{GroupID: "direct", ArtifactID: "direct", Version: "1", Scope: "compile"}},
		},
		{
			name: "nested list found when project has none",
			pom: `<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencyManagement>
    <dependencies>
      <dependency><groupId>managed</groupId><artifactId>managed</artifactId><version>9</version></dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
			want: []Dependency{{GroupID: "managed", ArtifactID: "managed", Version: "9", Scope: "compile"}},
		},
		{
			name: "prefixed namespace",
			pom: `<pom:project xmlns:pom="http://maven.apache.org/POM/4.0.0">
  <pom:dependencies>
    <pom:dependency><pom:groupId>p</pom:groupId><pom:artifactId>q</pom:artifactId></pom:dependency>
  </pom:dependencies>
</pom:project>`,
			want: []Dependency{{GroupID: "p", ArtifactID: "q", Version: "N/A", Scope: "compile"}},
		},
		{
			name: "elements outside namespace ignored",
			pom: `<project>
  <dependencies>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId></dependency>
  </dependencies>
</project>`,
			want: []Dependency{},
		},
		{
			name: "declaration, comments and doctype allowed",
			pom: `<?xml version="1.0" encoding="ISO-8859-1"?>
<!-- generated -->
<!DOCTYPE project>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency><groupId>g</groupId><artifactId>a</artifactId></dependency>
  </dependencies>
</project>
<!-- trailer -->
`,
			want: []Dependency{{GroupID: "g", ArtifactID: "a", Version: "N/A", Scope: "compile"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDependencies(tt.pom)
			if err != nil {
				t.Fatalf("ParseDependencies() error: %v", err)
			}
			if got == nil {
				t.Fatal("ParseDependencies() returned nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDependencies() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDependenciesMalformed(t *testing.T) {
	tests := []struct {
		name string
		pom  string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t"},
		{"not xml", "this is not a POM"},
		{"unclosed element", `<project xmlns="http://maven.apache.org/POM/4.0.0"><dependencies>`},
		{"mismatched tags", `<project><dependencies></project></dependencies>`},
		{"junk after root", `<project/>trailing`},
		{"two roots", `<project/><project/>`},
		{"text before root", `hello <project/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDependencies(tt.pom)
			if err == nil {
				t.Fatalf("ParseDependencies() = %+v, want error", got)
			}
			if got != nil {
				t.Errorf("ParseDependencies() returned %+v alongside error", got)
			}
			if !errors.Is(err, errors.ErrCodeManifestParse) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeManifestParse)
			}
		})
	}
}

func TestDependencyString(t *testing.T) {
	d := Dependency{GroupID: "junit", ArtifactID: "junit", Version: NotAvailable, Scope: DefaultScope}
	if got := d.String(); got != "junit:junit:N/A" {
		t.Errorf("String() = %q, want %q", got, "junit:junit:N/A")
	}
}
