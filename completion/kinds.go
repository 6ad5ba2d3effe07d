package completion

// SemanticKind is one of the closed set of named-argument categories, each
// backed by its own shell-side completion helper.
type SemanticKind int

const (
	KindFormula SemanticKind = iota
	KindInstalledFormula
	KindOutdatedFormula
	KindCask
	KindInstalledCask
	KindOutdatedCask
	KindTap
	KindInstalledTap
	KindCommand
	KindDiagnosticCheck
	KindFile
)

var kindNames = map[SemanticKind]string{
	KindFormula:          "formula",
	KindInstalledFormula: "installed_formula",
	KindOutdatedFormula:  "outdated_formula",
	KindCask:             "cask",
	KindInstalledCask:    "installed_cask",
	KindOutdatedCask:     "outdated_cask",
	KindTap:              "tap",
	KindInstalledTap:     "installed_tap",
	KindCommand:          "command",
	KindDiagnosticCheck:  "diagnostic_check",
	KindFile:             "file",
}

func (k SemanticKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseSemanticKind maps a metadata tag to its semantic kind. The second
// return is false for tags outside the enumeration; callers treat those as
// literal alternatives.
func ParseSemanticKind(tag string) (SemanticKind, bool) {
	for kind, name := range kindNames {
		if name == tag {
			return kind, true
		}
	}
	return 0, false
}

// bashKindHelpers maps each semantic kind to the bash helper function the
// generated script calls for it. Kinds missing from the table are skipped
// at emission.
var bashKindHelpers = map[SemanticKind]string{
	KindFormula:          "__brew_complete_formulae",
	KindInstalledFormula: "__brew_complete_installed_formulae",
	KindOutdatedFormula:  "__brew_complete_outdated_formulae",
	KindCask:             "__brew_complete_casks",
	KindInstalledCask:    "__brew_complete_installed_casks",
	KindOutdatedCask:     "__brew_complete_outdated_casks",
	KindTap:              "__brew_complete_tapped",
	KindInstalledTap:     "__brew_complete_tapped",
	KindCommand:          "__brew_complete_commands",
	KindDiagnosticCheck:  "__brew_complete_diagnostic_checks",
	KindFile:             "__brew_complete_files",
}

// zshKindHelpers is the zsh counterpart of bashKindHelpers. Same key set,
// zsh-style completion function names.
var zshKindHelpers = map[SemanticKind]string{
	KindFormula:          "__brew_formulae",
	KindInstalledFormula: "__brew_installed_formulae",
	KindOutdatedFormula:  "__brew_outdated_formulae",
	KindCask:             "__brew_casks",
	KindInstalledCask:    "__brew_installed_casks",
	KindOutdatedCask:     "__brew_outdated_casks",
	KindTap:              "__brew_any_tap",
	KindInstalledTap:     "__brew_installed_taps",
	KindCommand:          "__brew_commands",
	KindDiagnosticCheck:  "__brew_diagnostic_checks",
	KindFile:             "_files",
}
