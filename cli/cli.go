package cli

import (
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/shadowevil/D2SLib-Resurrected/d2s"
	"github.com/shadowevil/D2SLib-Resurrected/ui"
)

type (
	Args struct {
		Decode      *DecodeCmd      `arg:"subcommand:decode"`
		Encode      *EncodeCmd      `arg:"subcommand:encode"`
		Patch       *PatchCmd       `arg:"subcommand:patch"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
	}
	DecodeCmd struct {
		From   string `arg:"required" help:"path to save file or quests section" placeholder:"char.d2s"`
		To     string `arg:"required" help:"path to destination file" placeholder:"quests.json"`
		Offset int    `default:"-1" help:"section offset, -1 to locate it"`
		Debug  bool   `help:"write the struct form instead of the named form"`
		Force  bool   `help:"overwrite the destination file"`
	}
	EncodeCmd struct {
		From  string `arg:"required" help:"path to quests JSON" placeholder:"quests.json"`
		To    string `arg:"required" help:"path to destination file" placeholder:"quests.bin"`
		Force bool   `help:"overwrite the destination file"`
	}
	PatchCmd struct {
		Save   string `arg:"required" help:"path to save file" placeholder:"char.d2s"`
		From   string `arg:"required" help:"path to quests JSON" placeholder:"quests.json"`
		To     string `arg:"required" help:"path to destination file" placeholder:"patched.d2s"`
		Offset int    `default:"-1" help:"section offset, -1 to locate it"`
		Force  bool   `help:"overwrite the destination file"`
	}
	InteractiveCmd struct {
		From   string `arg:"required" help:"path to save file or quests section" placeholder:"char.d2s"`
		Offset int    `default:"-1" help:"section offset, -1 to locate it"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Stay awhile and listen.\n",
			"A CLI utility to read and write the quests section",
			"of a character save as JSON.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// checkPaths reports to the user and returns false when the command should not go on.
func checkPaths(from string, to string, force bool) bool {
	if !CheckExistence(from) {
		println("Source file does not exist!")
		return false
	}
	if CheckExistence(to) && !force {
		println("Destination file existed. Please type the command again with --force to allow overwriting!")
		println("Explicit --force is needed to make sure that you paid attention not to overwriting the actual save file in your folder.")
		return false
	}
	return true
}

// readSection returns the section bytes: the file itself when it starts with
// the magic number, otherwise the range at offset.
func readSection(path string, offset int) ([]byte, error) {
	fileBytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `readSection error reading "%s"`, path)
	}
	if offset < 0 && d2s.IsQuestsSection(fileBytes) {
		return fileBytes, nil
	}
	offset, err = d2s.ResolveOffset(fileBytes, offset)
	if err != nil {
		return nil, err
	}
	if offset > len(fileBytes) {
		return nil, errors.Errorf("readSection offset %d is past the end of %s", offset, path)
	}
	return fileBytes[offset:], nil
}

func StartDecoding(cmd DecodeCmd) {
	if !checkPaths(cmd.From, cmd.To, cmd.Force) {
		return
	}
	sectionBytes, err := readSection(cmd.From, cmd.Offset)
	if err != nil {
		println("Error happened reading the quests section: " + err.Error())
		return
	}
	jsonBytes, err := d2s.DecodeQuestsJSON(sectionBytes, cmd.Debug)
	if err != nil {
		println("Error happened decoding quests to JSON: " + err.Error())
		return
	}
	if err := ioutil.WriteFile(cmd.To, jsonBytes, 0644); err != nil {
		println("Error happened writing to file at: " + cmd.To)
		return
	}
	println("Done decoding. Please check your result file at: " + cmd.To)
}

func StartEncoding(cmd EncodeCmd) {
	if !checkPaths(cmd.From, cmd.To, cmd.Force) {
		return
	}
	jsonBytes, err := ioutil.ReadFile(cmd.From)
	if err != nil {
		println("Error happened reading file")
		return
	}
	sectionBytes, err := d2s.EncodeQuestsJSON(jsonBytes)
	if err != nil {
		println("Error happened encoding JSON to quests: " + err.Error())
		return
	}
	if err := ioutil.WriteFile(cmd.To, sectionBytes, 0644); err != nil {
		println("Error happened writing output to: " + cmd.To)
		return
	}
	println("Done encoding. Please check your result file at: " + cmd.To)
}

func StartPatching(cmd PatchCmd) {
	if !CheckExistence(cmd.Save) {
		println("Save file does not exist!")
		return
	}
	if !checkPaths(cmd.From, cmd.To, cmd.Force) {
		return
	}
	saveBytes, err := ioutil.ReadFile(cmd.Save)
	if err != nil {
		println("Error happened reading file at: " + cmd.Save)
		return
	}
	jsonBytes, err := ioutil.ReadFile(cmd.From)
	if err != nil {
		println("Error happened reading file at: " + cmd.From)
		return
	}
	section, err := d2s.ParseQuestsJSON(jsonBytes)
	if err != nil {
		println("Error happened parsing quests JSON: " + err.Error())
		return
	}
	patchedBytes, err := d2s.PatchQuestsInFile(saveBytes, cmd.Offset, *section)
	if err != nil {
		println("Error happened patching the save: " + err.Error())
		return
	}
	if err := ioutil.WriteFile(cmd.To, patchedBytes, 0644); err != nil {
		println("Error happened writing output to: " + cmd.To)
		return
	}
	println("Done patching. The save checksum is not updated, please fix it before loading: " + cmd.To)
}

func StartInteractive(cmd InteractiveCmd) {
	sectionBytes, err := readSection(cmd.From, cmd.Offset)
	if err != nil {
		log.Fatal(err)
	}
	section, err := d2s.DecodeQuests(sectionBytes)
	if err != nil {
		log.Fatal(errors.Wrap(err, "StartInteractive error decoding quests"))
	}
	ui.Start(*section)
}

func Start() {
	args := Args{}
	p := arg.MustParse(&args)

	switch {
	case args.Decode != nil:
		StartDecoding(*args.Decode)
	case args.Encode != nil:
		StartEncoding(*args.Encode)
	case args.Patch != nil:
		StartPatching(*args.Patch)
	case args.Interactive != nil:
		StartInteractive(*args.Interactive)
	default:
		p.WriteHelp(os.Stdout)
	}
}
