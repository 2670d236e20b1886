package posts

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/crucial707/twitter-crud/cmd/cli/client"
	"github.com/crucial707/twitter-crud/cmd/cli/output"
	"github.com/crucial707/twitter-crud/internal/models"
	"github.com/spf13/cobra"
)

var postHeaders = []string{"ID", "User ID", "Message", "Created At"}

// ==========================
// CLI Command Init
// ==========================
func Init(rootCmd *cobra.Command) {
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage posts",
	}

	postsCmd.AddCommand(
		listPostsCmd(),
		getPostCmd(),
		createPostCmd(),
		deletePostCmd(),
	)

	rootCmd.AddCommand(postsCmd)
}

func postRows(posts ...models.Post) [][]interface{} {
	rows := make([][]interface{}, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []interface{}{p.ID, p.UserID, p.Message, p.CreatedAt.String()})
	}
	return rows
}

// ==========================
// LIST
// ==========================
func listPostsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var posts []models.Post
			if err := client.New().Do(cmd.Context(), http.MethodGet, "/posts", nil, &posts, http.StatusOK); err != nil {
				return err
			}

			if asJSON {
				return output.RenderJSON(posts)
			}
			output.RenderTable(postHeaders, postRows(posts...))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// ==========================
// GET
// ==========================
func getPostCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var post models.Post
			err := client.New().Do(cmd.Context(), http.MethodGet, "/posts/"+url.PathEscape(args[0]), nil, &post,
				http.StatusOK, http.StatusFound)
			if err != nil {
				return err
			}

			if asJSON {
				return output.RenderJSON(post)
			}
			output.RenderTable(postHeaders, postRows(post))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

// ==========================
// CREATE
// ==========================
func createPostCmd() *cobra.Command {
	var userID string
	var message string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var post models.Post
			payload := map[string]string{
				"user_id": userID,
				"message": message,
			}
			if err := client.New().Do(cmd.Context(), http.MethodPost, "/posts", payload, &post, http.StatusCreated); err != nil {
				return err
			}

			fmt.Printf("Post %s created\n", post.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "id of the posting user")
	cmd.Flags().StringVar(&message, "message", "", "post text")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

// ==========================
// DELETE
// ==========================
func deletePostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.New().Do(cmd.Context(), http.MethodDelete, "/posts/"+url.PathEscape(args[0]), nil, nil, http.StatusOK); err != nil {
				return err
			}

			fmt.Println("Post deleted")
			return nil
		},
	}
}
