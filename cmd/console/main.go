package main // Interactive terminal front end for the hospital admin console

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/client"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/console"
)

var stdin = bufio.NewReader(os.Stdin)

// prompt reads one line, returning def when the operator just presses
// enter.  Drafts keep everything as text, so no parsing happens here.
func prompt(label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := stdin.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return def
	}
	return line
}

// confirmPrompt is the ConfirmFunc injected into the coordinator.
func confirmPrompt(msg string) bool {
	answer := prompt(msg+" (y/N)", "n")
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if os.Getenv("APP_ENV") == "dev" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	api := client.New(baseURL, logger)
	store := console.NewEntityStore(api, logger)
	co := console.New(api, store, logger, confirmPrompt)

	ctx := context.Background()
	if err := store.Load(ctx); err != nil {
		fmt.Println("initial load failed; starting with empty lists (use 'reload' to retry)")
	}

	fmt.Println("hospital admin console — type 'help' for commands")
	for {
		fmt.Print("> ")
		line, err := stdin.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd := strings.ToLower(fields[0])
		args := fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "reload":
			if err := store.Load(ctx); err != nil {
				fmt.Println("reload failed; previous lists kept")
			}
		case "export":
			if len(args) != 1 {
				fmt.Println("usage: export <file.xlsx>")
				continue
			}
			if err := console.ExportWorkbook(store, args[0]); err != nil {
				fmt.Println("export failed:", err)
			} else {
				fmt.Println("wrote", args[0])
			}
		case "hospitals":
			printHospitals(store)
		case "roles":
			printRoles(store)
		case "users":
			printUsers(store)
		case "doctors":
			printDoctors(store)
		case "new", "edit", "delete":
			if len(args) == 0 {
				fmt.Println("usage:", cmd, "<hospital|role|user|doctor> [id]")
				continue
			}
			runMutation(ctx, co, cmd, args)
		default:
			fmt.Println("unknown command; type 'help'")
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  hospitals | roles | users | doctors     list a collection
  new <entity>                            create a record
  edit <entity> <id>                      edit an existing record
  delete <entity> <id>                    delete after confirmation
  reload                                  refresh all four collections
  export <file.xlsx>                      write the snapshot to a workbook
  quit`)
}

func argID(args []string) (uint64, bool) {
	if len(args) < 2 {
		fmt.Println("an id is required")
		return 0, false
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fmt.Println("invalid id:", args[1])
		return 0, false
	}
	return id, true
}

func runMutation(ctx context.Context, co *console.Console, cmd string, args []string) {
	entity := strings.ToLower(strings.TrimSuffix(args[0], "s"))
	switch entity {
	case "hospital":
		hospitalMutation(ctx, co, cmd, args)
	case "role":
		roleMutation(ctx, co, cmd, args)
	case "user":
		userMutation(ctx, co, cmd, args)
	case "doctor":
		doctorMutation(ctx, co, cmd, args)
	default:
		fmt.Println("unknown entity:", args[0])
	}
}

func hospitalMutation(ctx context.Context, co *console.Console, cmd string, args []string) {
	store := co.Store()
	switch cmd {
	case "delete":
		if id, ok := argID(args); ok {
			if err := co.DeleteHospital(ctx, id); err != nil {
				fmt.Println("delete failed:", err)
			}
		}
		return
	case "edit":
		id, ok := argID(args)
		if !ok {
			return
		}
		found := false
		for _, h := range store.Hospitals() {
			if h.ID == id {
				co.StartEditHospital(h)
				found = true
				break
			}
		}
		if !found {
			fmt.Println("no hospital with id", id)
			return
		}
	}
	d := &co.Hospitals.Draft
	d.Name = prompt("name", d.Name)
	d.Address = prompt("address", d.Address)
	if err := co.SubmitHospital(ctx); err != nil {
		fmt.Println("submit failed:", err)
	}
}

func roleMutation(ctx context.Context, co *console.Console, cmd string, args []string) {
	store := co.Store()
	switch cmd {
	case "delete":
		if id, ok := argID(args); ok {
			if err := co.DeleteRole(ctx, id); err != nil {
				fmt.Println("delete failed:", err)
			}
		}
		return
	case "edit":
		id, ok := argID(args)
		if !ok {
			return
		}
		found := false
		for _, r := range store.Roles() {
			if r.ID == id {
				co.StartEditRole(r)
				found = true
				break
			}
		}
		if !found {
			fmt.Println("no role with id", id)
			return
		}
	}
	d := &co.Roles.Draft
	d.RoleName = prompt("role name", d.RoleName)
	d.Permissions = prompt("permissions (comma-delimited)", d.Permissions)
	d.HospitalID = prompt("hospital id (empty = global)", d.HospitalID)
	if err := co.SubmitRole(ctx); err != nil {
		fmt.Println("submit failed:", err)
	}
}

func userMutation(ctx context.Context, co *console.Console, cmd string, args []string) {
	store := co.Store()
	switch cmd {
	case "delete":
		if id, ok := argID(args); ok {
			if err := co.DeleteUser(ctx, id); err != nil {
				fmt.Println("delete failed:", err)
			}
		}
		return
	case "edit":
		id, ok := argID(args)
		if !ok {
			return
		}
		found := false
		for _, u := range store.Users() {
			if u.ID == id {
				co.StartEditUser(u)
				found = true
				break
			}
		}
		if !found {
			fmt.Println("no user with id", id)
			return
		}
	}
	d := &co.Users.Draft
	d.Username = prompt("username", d.Username)
	d.FullName = prompt("full name", d.FullName)
	d.Email = prompt("email", d.Email)
	d.Password = prompt("password (empty = keep current)", "")
	d.RoleID = prompt("role id (empty = none)", d.RoleID)
	if err := co.SubmitUser(ctx); err != nil {
		fmt.Println("submit failed:", err)
	}
}

func doctorMutation(ctx context.Context, co *console.Console, cmd string, args []string) {
	store := co.Store()
	switch cmd {
	case "delete":
		if id, ok := argID(args); ok {
			if err := co.DeleteDoctor(ctx, id); err != nil {
				fmt.Println("delete failed:", err)
			}
		}
		return
	case "edit":
		id, ok := argID(args)
		if !ok {
			return
		}
		found := false
		for _, doc := range store.Doctors() {
			if doc.ID == id {
				co.StartEditDoctor(doc)
				found = true
				break
			}
		}
		if !found {
			fmt.Println("no doctor with id", id)
			return
		}
	}
	d := &co.Doctors.Draft
	d.UserID = prompt("user id", d.UserID)
	d.HospitalID = prompt("hospital id", d.HospitalID)
	d.Specialty = prompt("specialty", d.Specialty)
	d.ShortBio = prompt("short bio", d.ShortBio)
	if err := co.SubmitDoctor(ctx); err != nil {
		fmt.Println("submit failed:", err)
	}
}

func printHospitals(store *console.EntityStore) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tADDRESS\tCREATED")
	for _, h := range store.Hospitals() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", h.ID, h.Name, h.Address, h.CreatedAt.Format("2006-01-02"))
	}
	_ = w.Flush()
}

func printRoles(store *console.EntityStore) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tROLE\tPERMISSIONS\tHOSPITAL")
	for _, r := range store.Roles() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.RoleName, r.Permissions, console.RoleHospitalName(r))
	}
	_ = w.Flush()
}

func printUsers(store *console.EntityStore) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tFULL NAME\tEMAIL\tROLE")
	for _, u := range store.Users() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.FullName, u.Email, console.UserRoleName(u))
	}
	_ = w.Flush()
}

func printDoctors(store *console.EntityStore) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tFULL NAME\tHOSPITAL\tSPECIALTY")
	for _, d := range store.Doctors() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", d.ID, console.DoctorUsername(d), console.DoctorFullName(d), console.DoctorHospitalName(d), d.Specialty)
	}
	_ = w.Flush()
}
