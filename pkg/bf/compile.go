package bf

// Compile parses src and renders it as a C translation unit. It is the
// front-to-back pipeline entry used by the CLI's compile mode.
func Compile(src string) (string, error) {
	prog, err := Parse(src)
	if err != nil {
		return "", err
	}
	return GenerateC(prog), nil
}
