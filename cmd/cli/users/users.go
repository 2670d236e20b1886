package users

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/crucial707/twitter-crud/cmd/cli/client"
	"github.com/crucial707/twitter-crud/cmd/cli/output"
	"github.com/crucial707/twitter-crud/internal/models"
	"github.com/spf13/cobra"
)

var userHeaders = []string{"ID", "Username", "Created At"}

// ==========================
// CLI Command Init
// ==========================
func Init(rootCmd *cobra.Command) {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	usersCmd.AddCommand(
		listUsersCmd(),
		getUserCmd(),
		createUserCmd(),
		renameUserCmd(),
		deleteUserCmd(),
	)

	rootCmd.AddCommand(usersCmd)
}

func userRows(users ...models.User) [][]interface{} {
	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{u.ID, u.Username, u.CreatedAt.String()})
	}
	return rows
}

// ==========================
// LIST
// ==========================
func listUsersCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var users []models.User
			if err := client.New().Do(cmd.Context(), http.MethodGet, "/users", nil, &users, http.StatusOK); err != nil {
				return err
			}

			if asJSON {
				return output.RenderJSON(users)
			}
			output.RenderTable(userHeaders, userRows(users...))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// ==========================
// GET
// ==========================
func getUserCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get [username]",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user models.User
			// The server may run with legacy status codes, where a hit is 302.
			err := client.New().Do(cmd.Context(), http.MethodGet, "/users/"+url.PathEscape(args[0]), nil, &user,
				http.StatusOK, http.StatusFound)
			if err != nil {
				return err
			}

			if asJSON {
				return output.RenderJSON(user)
			}
			output.RenderTable(userHeaders, userRows(user))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// ==========================
// CREATE
// ==========================
func createUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [username]",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user models.User
			payload := map[string]string{"username": args[0]}
			if err := client.New().Do(cmd.Context(), http.MethodPost, "/users", payload, &user, http.StatusCreated); err != nil {
				return err
			}

			fmt.Printf("User %s created with id %s\n", user.Username, user.ID)
			return nil
		},
	}
}

// ==========================
// RENAME
// ==========================
func renameUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [username] [new-username]",
		Short: "Change a user's username",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user models.User
			payload := map[string]string{"username": args[1]}
			err := client.New().Do(cmd.Context(), http.MethodPatch, "/users/"+url.PathEscape(args[0]), payload, &user,
				http.StatusAccepted)
			if err != nil {
				return err
			}

			fmt.Printf("User %s renamed to %s\n", args[0], user.Username)
			return nil
		},
	}
}

// ==========================
// DELETE
// ==========================
func deleteUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [username]",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"username": args[0]}
			if err := client.New().Do(cmd.Context(), http.MethodDelete, "/users", payload, nil, http.StatusOK); err != nil {
				return err
			}

			fmt.Println("User deleted")
			return nil
		},
	}
}
