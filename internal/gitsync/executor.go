// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gitsync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-git-save/internal/config"
	"github.com/MKhiriev/go-git-save/internal/logger"
	"github.com/MKhiriev/go-git-save/models"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/gofrs/flock"
)

const remoteName = "origin"

// Result is the outcome of one [Executor.Sync] run.
type Result struct {
	Code    int
	Message string

	Committed bool
	Pulled    bool
	Pushed    bool
}

// Executor syncs one game's save directory with its remote.
type Executor interface {
	Sync(ctx context.Context, appID string, settings models.EntitySettings) Result
}

type executor struct {
	authorName    string
	authorEmail   string
	commitMessage string
	branch        string
	lockDir       string

	now    func() time.Time
	logger *logger.Logger
}

// NewExecutor builds a go-git [Executor] from the git settings. Empty fields
// fall back to the config package defaults; an empty lock directory selects
// a directory under os.TempDir.
func NewExecutor(cfg config.Git, logger *logger.Logger) Executor {
	lockDir := cfg.LockDir
	if lockDir == "" {
		lockDir = filepath.Join(os.TempDir(), "git-save-locks")
	}

	return &executor{
		authorName:    orDefault(cfg.AuthorName, config.DefaultAuthorName),
		authorEmail:   orDefault(cfg.AuthorEmail, config.DefaultAuthorEmail),
		commitMessage: orDefault(cfg.CommitMessage, config.DefaultCommitMessage),
		branch:        orDefault(cfg.Branch, config.DefaultBranch),
		lockDir:       lockDir,
		now:           time.Now,
		logger:        logger,
	}
}

// Sync implements [Executor].
func (e *executor) Sync(ctx context.Context, appID string, settings models.EntitySettings) Result {
	log := e.logger.With().Str("appid", appID).Str("local", settings.LocalPath).Logger()

	if missing := settings.Missing(); len(missing) > 0 {
		return fail(models.ProbeCodeSettingsMissing, fmt.Errorf("missing settings: %s", joinKeys(missing)))
	}

	lock, err := e.lock(appID)
	if err != nil {
		log.Warn().Err(err).Msg("repository is locked")
		return fail(models.ProbeCodeRepositoryLocked, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn().Err(err).Msg("failed to release repository lock")
		}
	}()

	repo, err := e.open(settings.LocalPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open git repository")
		return fail(models.ProbeCodeOpenFailed, err)
	}

	if err = ensureRemote(repo, settings.RemoteURL); err != nil {
		log.Error().Err(err).Msg("failed to configure remote")
		return fail(models.ProbeCodeRemoteFailed, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fail(models.ProbeCodeOpenFailed, err)
	}

	var res Result
	branch := e.headBranch(repo)
	auth := authFor(settings)

	if err = wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		log.Error().Err(err).Msg("failed to add files")
		return fail(models.ProbeCodeAddFailed, err)
	}

	if res.Committed, err = e.commit(wt); err != nil {
		log.Error().Err(err).Msg("failed to commit changes")
		return fail(models.ProbeCodeCommitFailed, err)
	}

	if res.Pulled, err = pull(ctx, repo, wt, branch, auth); err != nil {
		log.Error().Err(err).Msg("failed to pull from remote")
		return fail(models.ProbeCodePullFailed, err)
	}

	if res.Pushed, err = push(ctx, repo, branch, auth); err != nil {
		log.Error().Err(err).Msg("failed to push to remote")
		return fail(models.ProbeCodePushFailed, err)
	}

	res.Code = models.ProbeCodeOK
	if !res.Committed && !res.Pulled && !res.Pushed {
		res.Code = models.ProbeCodeSkipped
	}
	log.Info().
		Int("code", res.Code).
		Bool("committed", res.Committed).
		Bool("pulled", res.Pulled).
		Bool("pushed", res.Pushed).
		Msg("git sync finished")

	return res
}

// lock takes the per-game file lock without waiting.
func (e *executor) lock(appID string) (*flock.Flock, error) {
	if err := os.MkdirAll(e.lockDir, 0o700); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}

	lock := flock.New(filepath.Join(e.lockDir, lockFileName(appID)))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock repository: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return lock, nil
}

// open opens the worktree at path, initialising a repository on the
// configured branch when there is none yet.
func (e *executor) open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpen(path)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, err
	}

	return git.PlainInitWithOptions(path, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(e.branch)},
	})
}

// headBranch returns the branch HEAD points at, including an unborn one.
func (e *executor) headBranch(repo *git.Repository) plumbing.ReferenceName {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err == nil && ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return ref.Target()
	}
	return plumbing.NewBranchReferenceName(e.branch)
}

func (e *executor) commit(wt *git.Worktree) (bool, error) {
	status, err := wt.Status()
	if err != nil {
		return false, err
	}
	if status.IsClean() {
		return false, nil
	}

	_, err = wt.Commit(e.commitMessage, &git.CommitOptions{
		Author: &object.Signature{Name: e.authorName, Email: e.authorEmail, When: e.now()},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ensureRemote points origin at url, replacing a stale URL.
func ensureRemote(repo *git.Repository, url string) error {
	remote, err := repo.Remote(remoteName)
	switch {
	case err == nil:
		urls := remote.Config().URLs
		if len(urls) == 1 && urls[0] == url {
			return nil
		}
		if err = repo.DeleteRemote(remoteName); err != nil {
			return err
		}
	case !errors.Is(err, git.ErrRemoteNotFound):
		return err
	}

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: remoteName, URLs: []string{url}})
	return err
}

// pull fast-forwards branch from origin and reports whether HEAD moved. An
// empty remote or a remote without the branch is not an error.
func pull(ctx context.Context, repo *git.Repository, wt *git.Worktree, branch plumbing.ReferenceName, auth transport.AuthMethod) (bool, error) {
	before := headHash(repo)

	err := wt.PullContext(ctx, &git.PullOptions{
		RemoteName:    remoteName,
		ReferenceName: branch,
		SingleBranch:  true,
		Auth:          auth,
	})

	var noMatch git.NoMatchingRefSpecError
	switch {
	case err == nil:
		return headHash(repo) != before, nil
	case errors.Is(err, git.NoErrAlreadyUpToDate),
		errors.Is(err, transport.ErrEmptyRemoteRepository),
		errors.Is(err, plumbing.ErrReferenceNotFound),
		errors.As(err, &noMatch):
		return false, nil
	default:
		return false, err
	}
}

func headHash(repo *git.Repository) plumbing.Hash {
	head, err := repo.Head()
	if err != nil {
		return plumbing.ZeroHash
	}
	return head.Hash()
}

// push sends branch to origin. Nothing is pushed while the branch is unborn.
func push(ctx context.Context, repo *git.Repository, branch plumbing.ReferenceName, auth transport.AuthMethod) (bool, error) {
	if _, err := repo.Reference(branch, true); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, err
	}

	spec := gitconfig.RefSpec(fmt.Sprintf("%s:%s", branch, branch))
	err := repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remoteName,
		RefSpecs:   []gitconfig.RefSpec{spec},
		Auth:       auth,
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, git.NoErrAlreadyUpToDate):
		return false, nil
	default:
		return false, err
	}
}

// authFor returns basic auth for http remotes. Local and ssh remotes get no
// explicit auth method.
func authFor(settings models.EntitySettings) transport.AuthMethod {
	url := strings.ToLower(settings.RemoteURL)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil
	}
	return &githttp.BasicAuth{Username: settings.User, Password: settings.Password}
}

func fail(code int, err error) Result {
	return Result{Code: code, Message: err.Error()}
}

func lockFileName(appID string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, appID)
	return safe + ".lock"
}

func joinKeys(keys []models.SettingKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
