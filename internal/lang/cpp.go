package lang

func init() {
	Languages["cpp"] = &Language{
		Name:       "cpp",
		Extensions: []string{".hh", ".cc", ".h", ".hpp", ".cpp"},
	}
}
