package launcher

import (
	"os/exec"
	"regexp"
	"strings"
	"text/template"

	"github.com/alessio/shellescape"
	"github.com/common-fate/clio"
	"github.com/pkg/errors"
)

type TemplateData struct {
	URL string
}

// Command opens a URL by running a user-provided command.
type Command struct {
	// Template is a series of arguments which may include templated variables.
	// For example: 'firefox --new-tab {{.URL}}'
	Template string
}

func (l Command) LaunchCommand(url string) ([]string, error) {
	if l.Template == "" {
		return nil, errors.New("the browser command template was empty")
	}

	tmpl := template.New("").Option("missingkey=error")
	tmpl, err := tmpl.Parse(l.Template)
	if err != nil {
		return nil, errors.Wrap(err, "parsing browser command template")
	}

	data := TemplateData{
		URL: url,
	}

	var renderedCommand strings.Builder
	err = tmpl.Execute(&renderedCommand, data)
	if err != nil {
		return nil, errors.Wrap(err, "executing browser command template")
	}

	commandParts := splitCommand(renderedCommand.String())
	if len(commandParts) == 0 {
		return nil, errors.New("the browser command template rendered an empty command")
	}
	return commandParts, nil
}

// Launch starts the command and returns without waiting for it to exit.
func (l Command) Launch(url string) error {
	args, err := l.LaunchCommand(url)
	if err != nil {
		return &Error{Err: err}
	}

	clio.Debugf("running browser command: %s", shellescape.QuoteCommand(args))

	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return &Error{Err: errors.Wrapf(err, "starting %s", args[0])}
	}
	if err := cmd.Process.Release(); err != nil {
		return &Error{Err: errors.Wrapf(err, "releasing %s", args[0])}
	}
	return nil
}

var commandPartRegex = regexp.MustCompile(`"([^"]+)"|(\S+)`)

// splits each component of the command. Anything within quotes will be handled as one component of the command
// eg open -a "Google Chrome" <URL> returns ["open", "-a", "Google Chrome", "<URL>"]
func splitCommand(command string) []string {
	matches := commandPartRegex.FindAllStringSubmatch(command, -1)

	var result []string
	for _, match := range matches {
		if match[1] != "" {
			result = append(result, match[1])
		} else {
			result = append(result, match[2])
		}
	}

	return result
}
