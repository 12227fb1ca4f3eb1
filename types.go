package papiext

// Extension is the build descriptor handed to the downstream build tool.
//
// Discovery strategies accumulate paths into it:
//   - IncludeDirs: directories passed to the compiler (-I)
//   - LibraryDirs: directories passed to the linker (-L)
//   - RuntimeLibraryDirs: directories embedded in the built artifact (rpath)
//
// The Add* methods ignore empty values and values already present, so the same
// descriptor can be resolved more than once without growing.
//
// An Extension has a single writer. It is not safe for concurrent mutation.
type Extension struct {
	Name    string   `json:"name"`    // Extension module name (e.g., "cypapi")
	Sources []string `json:"sources"` // Source files compiled into the extension

	Libraries          []string `json:"libraries"`            // Libraries to link (-l)
	IncludeDirs        []string `json:"include_dirs"`         // Header search directories
	LibraryDirs        []string `json:"library_dirs"`         // Link-time library directories
	RuntimeLibraryDirs []string `json:"runtime_library_dirs"` // Load-time library directories
}

// NewExtension creates a descriptor with the given sources and link libraries.
func NewExtension(name string, sources []string, libraries ...string) *Extension {
	ext := &Extension{
		Name:    name,
		Sources: append([]string(nil), sources...),
	}
	for _, lib := range libraries {
		ext.AddLibrary(lib)
	}
	return ext
}

// DefaultExtension returns the descriptor for the PAPI binding: the cypapi
// module built from papi/cypapi.pyx and linked against libpapi.
func DefaultExtension() *Extension {
	return NewExtension(DefaultExtensionName, []string{DefaultSource}, DefaultLibrary)
}

// AddIncludeDir appends dir to IncludeDirs unless already present.
func (e *Extension) AddIncludeDir(dir string) {
	e.IncludeDirs = appendUnique(e.IncludeDirs, dir)
}

// AddLibraryDir appends dir to LibraryDirs unless already present.
func (e *Extension) AddLibraryDir(dir string) {
	e.LibraryDirs = appendUnique(e.LibraryDirs, dir)
}

// AddRuntimeLibraryDir appends dir to RuntimeLibraryDirs unless already present.
func (e *Extension) AddRuntimeLibraryDir(dir string) {
	e.RuntimeLibraryDirs = appendUnique(e.RuntimeLibraryDirs, dir)
}

// AddLibrary appends lib to Libraries unless already present.
func (e *Extension) AddLibrary(lib string) {
	e.Libraries = appendUnique(e.Libraries, lib)
}

// Clone returns a deep copy of the descriptor.
func (e *Extension) Clone() *Extension {
	if e == nil {
		return nil
	}
	return &Extension{
		Name:               e.Name,
		Sources:            append([]string(nil), e.Sources...),
		Libraries:          append([]string(nil), e.Libraries...),
		IncludeDirs:        append([]string(nil), e.IncludeDirs...),
		LibraryDirs:        append([]string(nil), e.LibraryDirs...),
		RuntimeLibraryDirs: append([]string(nil), e.RuntimeLibraryDirs...),
	}
}

// Outcome describes how a single strategy attempt ended.
type Outcome string

const (
	OutcomeFound   Outcome = "found"   // Strategy produced a library directory
	OutcomeSkipped Outcome = "skipped" // Strategy was inapplicable or found nothing
	OutcomeFailed  Outcome = "failed"  // Strategy hit an error; resolution continued
)

// Attempt records one strategy evaluation during Resolve.
type Attempt struct {
	Strategy   string  `json:"strategy"`
	Outcome    Outcome `json:"outcome"`
	LibraryDir string  `json:"library_dir,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// Resolution is the result of Locator.Resolve.
//
// Found is false when every strategy skipped or failed. That is not an error:
// the caller decides whether the build can still proceed, for example by
// relying on the system's default library search paths.
type Resolution struct {
	Library    string    `json:"library"`
	Found      bool      `json:"found"`
	LibraryDir string    `json:"library_dir,omitempty"` // Runtime library directory
	Strategy   string    `json:"strategy,omitempty"`    // Name of the winning strategy
	Attempts   []Attempt `json:"attempts"`
}
