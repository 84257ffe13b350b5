package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-workers-bot/models"
)

// Button labels.
const (
	BtnAgree         = "✅ I AGREE"
	BtnDisagree      = "❌ I DISAGREE"
	BtnBackToStart   = "🔙 Back to start"
	BtnMainMenu      = "🏠 Main menu"
	BtnLogin         = "🔐 Log in to Cloudflare"
	BtnDeployNautika = "🚀 Deploy Nautika"
	BtnListWorkers   = "📋 List workers"
	BtnDeleteWorker  = "🗑️ Delete worker"
	BtnDeployGithub  = "🔧 Deploy from GitHub"
	BtnConfirmDelete = "✅ Yes, delete"
	BtnCancelDelete  = "❌ Cancel"
)

const (
	AgreementText = `🤖 *Welcome to the Cloudflare Workers Deployer Bot!*

This bot helps you:
• deploy scripts to Cloudflare Workers
• manage your workers
• deploy straight from a GitHub repository

⚠️ *RULES:*
• use the bot responsibly
• do not spam or abuse its features
• use it for legitimate purposes only
• abuse may get you banned

💡 *HOW IT WORKS:*
1. Press "I AGREE" below
2. Send your Cloudflare API token
3. Send your Cloudflare account ID
4. Start deploying workers

*Do you accept the rules above?*`

	HelpText = `🤖 *Cloudflare Workers Deployer Bot - Help*

*COMMANDS:*
• /start - start using the bot
• /help - show this help
• /cancel - cancel the current operation

*FEATURES:*
1️⃣ *Deploy Nautika* - deploy the built-in Nautika script
2️⃣ *List workers* - show all workers of your account
3️⃣ *Delete worker* - remove a worker
4️⃣ *Deploy from GitHub* - deploy index.js of a public repository

*TIPS:*
• create API tokens at dash.cloudflare.com
• the account ID is shown in the Cloudflare dashboard
• worker names must be unique`

	CancelledText = "❌ Operation cancelled. Choose an option from the main menu."

	MustAgreeText = "❌ You have to accept the rules to use this bot."

	TokenInstructionsText = `✅ *You accepted the rules!*

Now send your *Cloudflare API token*.

*How to create one:*
1. Open dash.cloudflare.com
2. Click the profile icon (top right)
3. Choose "My Profile"
4. Open the "API Tokens" tab
5. Click "Create Token"
6. Use the "Edit Cloudflare Workers" template
7. Copy the generated token

*Send your token now:*`

	TokenTooShortText = "❌ This does not look like a valid token. Cloudflare API tokens are longer, please try again."

	AccountIDInstructionsText = `✅ *Token received!*

Now send your Cloudflare *Account ID*.

*Where to find it:*
1. Open dash.cloudflare.com
2. Select any domain or the Workers page
3. The Account ID is shown in the right sidebar

*Send your Account ID now:*`

	AccountIDEmptyText = "❌ The account ID cannot be empty. Please send your Cloudflare account ID:"

	MustLoginText = "❌ You have to log in first. Send /start to begin."

	DeployNautikaPromptText = "🚀 *Deploy Nautika*\n\n" + workerNamePrompt + "\n\n*Example:* `nautika-proxy` or `my-proxy-worker`"

	DeployGithubNamePromptText = "🔧 *Deploy from GitHub*\n\n" + workerNamePrompt + "\n\n*Example:* `github-worker` or `my-repo-worker`"

	InvalidWorkerNameText = `❌ *Invalid worker name!*

*The name must:*
• contain only lowercase letters, digits and hyphens
• be 1 to 63 characters long

*Valid examples:* ` + "`nautika-proxy`, `my-worker-123`" + `

Please try again:`

	InvalidRepoURLText = `❌ *Invalid GitHub URL!*

*Accepted formats:*
• https://github.com/username/repository
• https://github.com/username/repository.git

Please try again:`

	DeployingText       = "🚀 *Deploying...*"
	CloningText         = "🔧 *Cloning the repository and deploying...*"
	FetchingWorkersText = "📋 *Fetching your workers...*"

	NoWorkersText = `📋 *No workers yet*

You have not deployed any workers. Try one of:
• Deploy Nautika
• Deploy from GitHub`

	NothingToDeleteText = "📋 *There are no workers to delete.*"

	GenericErrorText = "❌ Something went wrong. Please try again."

	workerNamePrompt = `Send the *worker name* you want to create.

*The name must be:*
• unique in your account
• lowercase letters, digits and hyphens only
• at most 63 characters`
)

// EscapeMarkdown escapes the characters that start an entity in the legacy
// Markdown parse mode, so dynamic values cannot break message formatting.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

func MenuText(authenticated bool) string {
	status := "❌ *Not logged in*"
	if authenticated {
		status = "✅ *Logged in*"
	}
	return "🏠 *Main menu*\n\n" + status + "\n\nChoose an option:"
}

func LoginSuccessText(account models.Account) string {
	name := account.Name
	if name == "" {
		name = "not available"
	}
	status := account.TokenStatus
	if status == "" {
		status = "not available"
	}
	return fmt.Sprintf(`✅ *Login successful!*

*Account:*
• Name: %s
• Token status: %s
• Account ID: %s

You can now use every feature of the bot.`, EscapeMarkdown(name), EscapeMarkdown(status), EscapeMarkdown(account.ID))
}

func LoginFailedText(reason string) string {
	return fmt.Sprintf("❌ *Validation failed!*\n\nError: %s\n\nCheck your token and account ID and send the account ID again:", EscapeMarkdown(reason))
}

func WorkerExistsText(name string) string {
	return fmt.Sprintf("❌ *A worker named \"%s\" already exists!*\n\nPlease choose another name:", EscapeMarkdown(name))
}

func WorkerLimitText(limit int) string {
	return fmt.Sprintf("❌ You reached the limit of %d workers deployed through the bot. Delete a worker before deploying a new one.", limit)
}

func GithubURLPromptText(name string) string {
	return fmt.Sprintf(`✅ *Worker name accepted: %s*

Now send the *GitHub repository URL*:

*Accepted formats:*
• https://github.com/username/repository
• https://github.com/username/repository.git

*Send the URL now:*`, EscapeMarkdown(name))
}

func DeploySuccessText(worker models.Worker) string {
	return fmt.Sprintf(`✅ *Deployment successful!*

*Worker:*
• Name: %s
• URL: %s
• Status: active

*Note:* the worker may need a few seconds to become reachable.`, EscapeMarkdown(worker.Name), EscapeMarkdown(worker.URL))
}

func GithubDeploySuccessText(worker models.Worker, repo models.GitHubRepo) string {
	return fmt.Sprintf(`✅ *Deployment from GitHub successful!*

*Worker:*
• Name: %s
• URL: %s
• Repository: %s
• Status: active`, EscapeMarkdown(worker.Name), EscapeMarkdown(worker.URL), EscapeMarkdown(repo.String()))
}

func DeployFailedText(reason string) string {
	return "❌ *Deploy failed!*\n\nError: " + EscapeMarkdown(reason)
}

func FetchScriptFailedText(reason string) string {
	return "❌ *Could not fetch the script from the repository.*\n\nError: " + EscapeMarkdown(reason)
}

func ListFailedText(reason string) string {
	return "❌ *Could not fetch your workers.*\n\nError: " + EscapeMarkdown(reason)
}

func WorkerListText(listings []models.WorkerListing) string {
	var b strings.Builder
	b.WriteString("📋 *Your workers:*\n\n")
	for i, l := range listings {
		fmt.Fprintf(&b, "%d. *%s*", i+1, EscapeMarkdown(l.Script.ID))
		if l.DeployedByBot {
			b.WriteString(" (deployed via bot)")
		}
		b.WriteString("\n")
		if !l.Script.CreatedOn.IsZero() {
			fmt.Fprintf(&b, "   🕐 Created: %s\n", l.Script.CreatedOn.UTC().Format(time.DateTime+" UTC"))
		}
		fmt.Fprintf(&b, "   🔗 URL: %s\n\n", EscapeMarkdown(l.URL))
	}
	return strings.TrimRight(b.String(), "\n")
}

// DeleteChooseText lists the deletable workers. Names in skipped are too long
// to fit into a button and can only be removed from the dashboard.
func DeleteChooseText(listings []models.WorkerListing, skipped []string) string {
	var b strings.Builder
	b.WriteString("🗑️ *Choose the worker to delete:*\n\n")
	for i, l := range listings {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, EscapeMarkdown(l.Script.ID))
	}
	if len(skipped) > 0 {
		b.WriteString("\nThese workers can only be deleted from the Cloudflare dashboard:\n")
		for _, name := range skipped {
			fmt.Fprintf(&b, "• %s\n", EscapeMarkdown(name))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func ConfirmDeleteText(name string) string {
	return fmt.Sprintf(`🗑️ *Confirm deletion*

Do you really want to delete the worker:
*%s*

⚠️ *Warning:*
• the worker is deleted permanently
• this cannot be undone
• the worker URL stops responding`, EscapeMarkdown(name))
}

func DeleteSuccessText(name string) string {
	return fmt.Sprintf("✅ *Worker deleted!*\n\n*Name:* %s\n*Status:* deleted", EscapeMarkdown(name))
}

func DeleteFailedText(reason string) string {
	return "❌ *Could not delete the worker.*\n\nError: " + EscapeMarkdown(reason)
}
