package models

// DeclaredParam is one formal parameter of an annotated function
type DeclaredParam struct {
	Name string // parameter name ("" for unnamed parameters)
	Type string // type as written, with any leading "*" stripped off by the parser
	Ptr  bool   // whether the parameter was declared as a pointer
}

// EndpointMetadata represents a single annotated function and the endpoint
// helper to generate for it
type EndpointMetadata struct {
	FuncName       string          // name of the annotated function or method
	Receiver       string          // receiver type name for methods ("" for functions)
	HelperName     string          // name of the generated helper function
	Template       string          // raw path template from the annotation
	ParamsType     string          // schema type named by -Params ("" when absent)
	DeclaredParams []DeclaredParam // the annotated function's own parameter list
	FileName       string          // file containing the annotation
	Line           int             // line of the annotation comment
}

// PackageMetadata represents all endpoint annotations found in a package
type PackageMetadata struct {
	PackageName string             // name of the Go package
	PackagePath string             // file system path to the package
	Endpoints   []EndpointMetadata // annotated functions in source order
}
