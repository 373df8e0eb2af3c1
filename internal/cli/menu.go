package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/JamesKanneh/computer-literacy-app/internal/auth"
	"github.com/JamesKanneh/computer-literacy-app/internal/content"
	"github.com/JamesKanneh/computer-literacy-app/internal/progress"
	"github.com/JamesKanneh/computer-literacy-app/internal/quiz"
)

// exitInput backs out of resource submenus.
const exitInput = "exit"

// Menu drives the interactive console session. All reads block on the input
// stream; every invalid input prints a message and returns to the enclosing
// loop, never ends the run.
type Menu struct {
	scanner  *bufio.Scanner
	out      io.Writer
	auth     *auth.Service
	catalog  *content.Catalog
	engine   *quiz.Engine
	progress *progress.Store
	logger   zerolog.Logger

	// readPassword masks password entry when set; nil falls back to a plain
	// line read (pipes, tests).
	readPassword func(prompt string) (string, error)

	identity *auth.Identity
}

// Options configures menu I/O.
type Options struct {
	In           io.Reader
	Out          io.Writer
	ReadPassword func(prompt string) (string, error)
}

// New creates a menu over the given services.
func New(authSvc *auth.Service, catalog *content.Catalog, engine *quiz.Engine, progressStore *progress.Store, opts Options, logger zerolog.Logger) *Menu {
	return &Menu{
		scanner:      bufio.NewScanner(opts.In),
		out:          opts.Out,
		auth:         authSvc,
		catalog:      catalog,
		engine:       engine,
		progress:     progressStore,
		logger:       logger,
		readPassword: opts.ReadPassword,
	}
}

// Run loops over the menus until the user exits or input ends. Input
// validation and authentication failures are reported and retried; only
// persistence failures end the run with an error.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		done, err := m.step()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}
		if err != nil {
			m.logger.Error().Err(err).Msg("session aborted on error")
			return err
		}
		if done {
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}
	}
}

func (m *Menu) step() (bool, error) {
	fmt.Fprintln(m.out, "\n=== Computer Literacy Hub ===")
	if m.identity == nil {
		return m.stepUnauthenticated()
	}
	return m.stepAuthenticated(*m.identity)
}

func (m *Menu) stepUnauthenticated() (bool, error) {
	fmt.Fprintln(m.out, "1) Sign Up")
	fmt.Fprintln(m.out, "2) Login")
	fmt.Fprintln(m.out, "3) Continue as Guest")
	fmt.Fprintln(m.out, "4) Exit")
	choice, err := m.readLine("Choose (1-4): ")
	if err != nil {
		return false, err
	}
	switch choice {
	case "1":
		return false, m.signup()
	case "2":
		return false, m.login()
	case "3":
		guest := auth.GuestIdentity()
		m.identity = &guest
		fmt.Fprintln(m.out, "Continuing as Guest...")
		return false, nil
	case "4":
		return true, nil
	}
	fmt.Fprintln(m.out, "Invalid choice.")
	return false, nil
}

func (m *Menu) stepAuthenticated(identity auth.Identity) (bool, error) {
	fmt.Fprintf(m.out, "Logged in as: %s\n", identity.DisplayName())
	fmt.Fprintln(m.out, "1) View Resources")
	fmt.Fprintln(m.out, "2) Take Quiz")

	if !identity.Registered() {
		// Guest is terminal for the session: no logout back to the
		// unauthenticated menu.
		fmt.Fprintln(m.out, "3) Exit")
		choice, err := m.readLine("Choose (1-3): ")
		if err != nil {
			return false, err
		}
		switch choice {
		case "1":
			return false, m.viewResources()
		case "2":
			fmt.Fprintln(m.out, "Guest progress is not saved. Sign up to keep your scores.")
			return false, m.takeQuiz(identity)
		case "3":
			return true, nil
		}
		fmt.Fprintln(m.out, "Invalid choice.")
		return false, nil
	}

	fmt.Fprintln(m.out, "3) View My Progress")
	fmt.Fprintln(m.out, "4) Logout")
	fmt.Fprintln(m.out, "5) Exit")
	choice, err := m.readLine("Choose (1-5): ")
	if err != nil {
		return false, err
	}
	switch choice {
	case "1":
		return false, m.viewResources()
	case "2":
		return false, m.takeQuiz(identity)
	case "3":
		return false, m.viewProgress(identity)
	case "4":
		fmt.Fprintf(m.out, "User '%s' logged out.\n", identity.Username)
		m.identity = nil
		return false, nil
	case "5":
		return true, nil
	}
	fmt.Fprintln(m.out, "Invalid choice.")
	return false, nil
}

func (m *Menu) signup() error {
	fmt.Fprintln(m.out, "\n=== Sign Up ===")
	username, err := m.readLine("Choose a username: ")
	if err != nil {
		return err
	}
	password, err := m.readSecret("Choose password: ")
	if err != nil {
		return err
	}
	confirmation, err := m.readSecret("Confirm password: ")
	if err != nil {
		return err
	}

	if err := m.auth.Signup(username, password, confirmation); err != nil {
		if msg, ok := userMessage(err); ok {
			fmt.Fprintln(m.out, msg)
			return nil
		}
		return err
	}
	fmt.Fprintf(m.out, "Account created for '%s'. You can now log in.\n", username)
	return nil
}

func (m *Menu) login() error {
	fmt.Fprintln(m.out, "\n=== Login ===")
	username, err := m.readLine("Username: ")
	if err != nil {
		return err
	}
	password, err := m.readSecret("Password: ")
	if err != nil {
		return err
	}

	identity, loginErr := m.auth.Login(username, password)
	if loginErr != nil {
		if msg, ok := userMessage(loginErr); ok {
			fmt.Fprintln(m.out, msg)
			return nil
		}
		return loginErr
	}
	m.identity = &identity
	fmt.Fprintf(m.out, "Welcome, %s!\n", identity.Username)
	return nil
}

func (m *Menu) viewResources() error {
	for {
		fmt.Fprintln(m.out, "\n=== Learning Resources ===")
		fmt.Fprintln(m.out, "Choose difficulty (or type 'exit' to go back):")
		fmt.Fprintln(m.out, "A) Beginner  B) Intermediate  C) Advanced")
		choice, err := m.readLine("Your choice: ")
		if err != nil {
			return err
		}
		if strings.EqualFold(choice, exitInput) {
			return nil
		}
		tier, parseErr := content.ParseTier(choice)
		if parseErr != nil {
			fmt.Fprintln(m.out, "Invalid choice.")
			continue
		}
		if err := m.browseTier(tier); err != nil {
			return err
		}
	}
}

func (m *Menu) browseTier(tier content.Tier) error {
	topics, err := m.catalog.Topics(tier)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid choice.")
		return nil
	}
	for {
		fmt.Fprintf(m.out, "\n=== %s Level Resources ===\n", tier.Label())
		for i, topic := range topics {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, topic.Title)
		}
		choice, err := m.readLine("Enter resource ID to read or type 'exit' to go back: ")
		if err != nil {
			return err
		}
		if strings.EqualFold(choice, exitInput) {
			return nil
		}
		index, convErr := strconv.Atoi(choice)
		if convErr != nil {
			fmt.Fprintln(m.out, "Invalid input.")
			continue
		}
		topic, topicErr := m.catalog.Topic(tier, index-1)
		if topicErr != nil {
			fmt.Fprintln(m.out, "Invalid resource number.")
			continue
		}
		fmt.Fprintf(m.out, "\n%s:\n%s\n", topic.Title, topic.Notes)
	}
}

func (m *Menu) takeQuiz(identity auth.Identity) error {
	fmt.Fprintln(m.out, "\nChoose difficulty for quiz: A) Beginner  B) Intermediate  C) Advanced")
	choice, err := m.readLine("Your choice: ")
	if err != nil {
		return err
	}
	tier, parseErr := content.ParseTier(choice)
	if parseErr != nil {
		fmt.Fprintln(m.out, "Invalid choice.")
		return nil
	}

	session, err := m.engine.Start(tier, identity)
	if err != nil {
		if errors.Is(err, quiz.ErrUnknownTier) {
			fmt.Fprintln(m.out, "Invalid choice.")
			return nil
		}
		return err
	}

	fmt.Fprintln(m.out, "Type 'exit' at any time to go back to the main menu.")
	for {
		question, ok := session.Current()
		if !ok {
			return nil
		}
		fmt.Fprintf(m.out, "\n%s\n", question.Prompt)
		for i, option := range question.Options {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, option)
		}
		answer, err := m.readLine(fmt.Sprintf("Your answer (1-%d): ", len(question.Options)))
		if err != nil {
			return err
		}

		turn, err := m.engine.Answer(session, answer)
		if err != nil {
			return err
		}
		switch {
		case turn.Exited:
			fmt.Fprintln(m.out, "Exiting quiz...")
		case turn.Correct:
			fmt.Fprintln(m.out, "Correct!")
		default:
			fmt.Fprintf(m.out, "Wrong! Correct answer: %d. %s\n", turn.CorrectIndex, turn.CorrectOption)
		}
		if turn.Terminal() {
			fmt.Fprintf(m.out, "\nYour score: %s (partial if exited early)\n", session.Result())
			if turn.Saved {
				fmt.Fprintln(m.out, "Progress saved.")
			}
			return nil
		}
	}
}

func (m *Menu) viewProgress(identity auth.Identity) error {
	scores, err := m.progress.GetAll(identity.Username)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\n=== My Progress ===")
	if len(scores) == 0 {
		fmt.Fprintln(m.out, "No quiz attempts recorded yet.")
		return nil
	}
	for _, tier := range content.AllTiers() {
		if score, ok := scores[tier]; ok {
			fmt.Fprintf(m.out, "%s: %d\n", tier.Label(), score)
		}
	}
	return nil
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.scanner.Text()), nil
}

func (m *Menu) readSecret(prompt string) (string, error) {
	if m.readPassword != nil {
		return m.readPassword(prompt)
	}
	return m.readLine(prompt)
}

// userMessage maps recoverable auth errors to the message shown to the user.
func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, auth.ErrEmptyUsername):
		return "Username cannot be empty.", true
	case errors.Is(err, auth.ErrUsernameTaken):
		return "Username exists. Try login.", true
	case errors.Is(err, auth.ErrEmptyPassword):
		return "Password cannot be empty.", true
	case errors.Is(err, auth.ErrPasswordMismatch):
		return "Passwords did not match.", true
	case errors.Is(err, auth.ErrUnknownUser):
		return "No such user. Please sign up first.", true
	case errors.Is(err, auth.ErrWrongPassword):
		return "Incorrect password.", true
	}
	return "", false
}
