// Package maven resolves the direct dependencies of a Maven package.
//
// # Overview
//
// Resolution is a four-stage pipeline. Each stage is a plain function or a
// small value type, and each stage's output is the next stage's only input:
//
//  1. [ParseCoordinate] splits "groupId:artifactId" into a [Coordinate]
//  2. [POMURL] maps coordinate, version and repository root to a POM address
//  3. A [Fetcher] retrieves the POM text (HTTP or local file)
//  4. [ParseDependencies] extracts the declared [Dependency] list
//
// [Resolver] chains the stages and [Resolve] is the one-call entry point:
//
//	repo := maven.NewRepository("https://repo1.maven.org/maven2", false)
//	res, err := maven.Resolve(ctx, "org.springframework:spring-core", "5.3.0", repo)
//	for _, d := range res.Dependencies {
//	    fmt.Println(d, d.Scope)
//	}
//
// # Repository Layout
//
// POMs are addressed with the standard layout:
//
//	<root>/<group/path>/<artifactId>/<version>/<artifactId>-<version>.pom
//
// For example "org.springframework:spring-core" 5.3.0 on Maven Central is
// https://repo1.maven.org/maven2/org/springframework/spring-core/5.3.0/spring-core-5.3.0.pom.
//
// # Transports
//
// [NewFetcher] chooses [HTTPFetcher] for http(s) roots and [FileFetcher] for
// filesystem roots or repositories flagged as test mode. The HTTP transport
// sends "User-Agent: Maven-Dependency-Visualizer/1.0", times out after 30
// seconds and accepts only 200 OK. Neither transport retries or caches.
//
// # Dependency Records
//
// Only elements in the POM 4.0.0 namespace are considered. Entries lacking a
// groupId or artifactId are dropped; a missing version is reported as
// [NotAvailable] ("N/A") and a missing scope as [DefaultScope] ("compile").
// Property references such as ${spring.version} are returned verbatim.
//
// # Errors
//
// Failures carry codes from [errors]:
//
//   - MALFORMED_COORDINATE from [ParseCoordinate]
//   - RETRIEVAL_FAILED ([errors.RetrievalError]) from fetchers
//   - MANIFEST_PARSE from [ParseDependencies]
//
// A POM without dependencies is not an error.
//
// [errors]: github.com/matzehuels/mavenviz/pkg/errors
// [errors.RetrievalError]: github.com/matzehuels/mavenviz/pkg/errors.RetrievalError
package maven
