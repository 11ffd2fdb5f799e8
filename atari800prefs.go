// This file is part of atari800prefs.
//
// atari800prefs is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari800prefs is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari800prefs.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/jetsetilly/atari800prefs/curated"
	"github.com/jetsetilly/atari800prefs/environment"
	"github.com/jetsetilly/atari800prefs/gui"
	"github.com/jetsetilly/atari800prefs/gui/panels"
	"github.com/jetsetilly/atari800prefs/gui/sdlimgui"
	"github.com/jetsetilly/atari800prefs/logger"
	"github.com/jetsetilly/atari800prefs/modalflag"
	"github.com/jetsetilly/atari800prefs/notifications"
	"github.com/jetsetilly/atari800prefs/prefs"
	"github.com/jetsetilly/atari800prefs/resources"
	"github.com/jetsetilly/atari800prefs/statsview"
	"github.com/joho/godotenv"
)

// name of the environment variable that names the log file. if the variable
// is empty or not set then the log is not written to a file.
const logFileEnv = "ATARI800PREFS_LOG_FILE"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when a mode provides its own
	// handler.
	//
	// takes an optional chan bool argument, which is closed once the handler
	// has been reset.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// There is no Create() function. Instead the creator is a channel which
// accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	// values in a .env file are added to the environment. a missing .env file
	// is normal
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("* error reading .env file: %v\n", err)
	}

	closer := logger.SetLogFile(os.Getenv(logFileEnv))
	exitVal := mainLoop()
	if closer != nil {
		_ = closer.Close()
	}

	os.Exit(exitVal)
}

// mainLoop returns the exit value for the program. the loop runs until launch()
// sends reqQuit or an interrupt signal is received.
//
// #mainthread
func mainLoop() int {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to return. can be changed with the reqQuit stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	// every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

			// destroying the gui saves the preferences if the preferences
			// window is open
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not equal to nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					if ack, ok := state.args.(chan bool); ok {
						close(ack)
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into chan bool", reqNoIntSig))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	return exitVal
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PREFS", "EXPORT", "IMPORT")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync, env)

	case "PREFS":
		err = prefsMode(md, env, os.Stdout)

	case "EXPORT":
		err = export(md, env, os.Stdout)

	case "IMPORT":
		err = importSettings(md, env, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// logNotify receives notifications from the GUI and adds them to the log.
// there is no emulation to reconfigure in this program.
type logNotify struct {
	env *environment.Environment
}

func (n logNotify) Notify(notice notifications.Notice) error {
	logger.Log(n.env, "notify", notice)
	return nil
}

func run(md *modalflag.Modes, sync *mainSync, env *environment.Environment) error {
	md.NewMode()

	showAbout := md.AddBool("about", false, "show the about box on startup")
	showPrefs := md.AddBool("preferences", true, "show the preferences window on startup")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else if os.Getenv(logFileEnv) == "" {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	// create gui. the notify instance must be set from the main thread
	sync.creator <- func() (GuiCreator, error) {
		img, err := sdlimgui.NewSdlImgui(env)
		if err != nil {
			return nil, err
		}
		img.SetNotify(logNotify{env: env})
		return img, nil
	}

	// wait for creator result
	var img *sdlimgui.SdlImgui
	select {
	case g := <-sync.creation:
		img = g.(*sdlimgui.SdlImgui)
	case err := <-sync.creationError:
		return err
	}

	var scr gui.GUI = img

	if *showPrefs {
		// the preferences window is shown even if the preferences file
		// could not be read
		err = scr.SetFeature(gui.ReqShowPreferences)
		if err != nil {
			fmt.Printf("* %v\n", err)
		}
	}

	if *showAbout {
		err = scr.SetFeature(gui.ReqShowAbout)
		if err != nil {
			return err
		}
	}

	// replace the default ctrl-c handling so that the open windows are
	// dismissed, and the settings saved, before quitting
	ack := make(chan bool)
	sync.state <- stateRequest{req: reqNoIntSig, args: ack}
	<-ack

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	select {
	case <-img.Done():
	case <-intChan:
		fmt.Println("\r")
		return closeWindows(scr)
	}

	return nil
}

// closeWindows dismisses every open panel window and then asks the GUI to
// quit. Dismissing the preferences window saves the settings.
func closeWindows(scr gui.GUI) error {
	data, err := scr.GetFeature(gui.ReqOpenWindows)
	if err != nil {
		return err
	}

	kinds, ok := data.([]panels.Kind)
	if !ok {
		return curated.Errorf("%v: unexpected data of type %T", gui.ReqOpenWindows, data)
	}

	for _, k := range kinds {
		err = scr.SetFeature(gui.ReqDismiss, k)
		if err != nil {
			return err
		}
	}

	return scr.SetFeature(gui.ReqQuit)
}

func prefsMode(md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()

	reset := md.AddBool("reset", false, "reset all settings to their default values")
	md.AdditionalHelp(`A prefs string is a list of key::value pairs separated by
semi-colons. For example:

  TvMode::1; ShowFPS::true`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	rec := env.Settings
	changed := false

	switch len(md.RemainingArgs()) {
	case 0:
		err = rec.Load()
		if err != nil {
			return err
		}
		if *reset {
			env.Normalise()
			changed = true
		}

	case 1:
		if *reset {
			return fmt.Errorf("cannot reset and apply a prefs string in %s mode", md)
		}

		prefs.PushCommandLineStack(md.GetArg(0))
		err = rec.Load()
		unused := prefs.PopCommandLineStack()
		if err != nil {
			return err
		}
		if unused != "" {
			fmt.Fprintf(output, "! unused preferences: %s\n", unused)
		}
		changed = true

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if changed {
		err = rec.Save()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(output, rec.String())

	return nil
}

func export(md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()

	overwrite := md.AddBool("overwrite", false, "overwrite an existing file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		filename = resources.UniqueFilename("settings", "yaml")
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	err = env.Settings.Load()
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !*overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(filename, flags, 0o644)
	if err != nil {
		return err
	}

	err = env.Settings.ExportYAML(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "settings exported to %s\n", filename)

	return nil
}

func importSettings(md *modalflag.Modes, env *environment.Environment, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("settings file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	err = env.Settings.Load()
	if err != nil {
		return err
	}

	err = env.Settings.ImportYAML(f)
	if err != nil {
		return err
	}

	err = env.Settings.Save()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "settings imported from %s\n", md.GetArg(0))

	return nil
}
