package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	"fedpub/shared"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks fedpub/dal IRepo

type IRepo interface {
	InitUpdateDb()
	GetNextId() uint64
	AddAccountIfNotExist(account *Account, privKey string) (isNew bool, err error)
	DoesAccountExist(handle string) (bool, error)
	GetAccount(handle string) (*Account, error)
	GetPrivKey(handle string) (string, error)
	SetKeyPair(handle, pubKey, privKey string) error
	GetRemoteActor(userUrl string) (*RemoteActor, error)
	GetRemoteActorByHandle(handle, host string) (*RemoteActor, error)
	UpsertRemoteActor(actor *RemoteActor) error
	AddFollower(handle string, follower *FollowerInfo) error
	SetFollowerStatus(handle, followerUserUrl string, status int) error
	UndoFollowerByRequestId(requestId string) (found bool, err error)
	GetFollowers(handle string, onlyAccepted bool) ([]*FollowerInfo, error)
	GetFollowerCount(handle string, onlyAccepted bool) (uint, error)
	GetFollowersPage(accountId, maxId, limit int) ([]*FollowerInfo, error)
	GetNoteCount(handle string) (uint, error)
	GetNoteByUrlHash(accountId int, urlHash int64, contentUrl string) (*Note, error)
	GetNoteByObjectId(objectId string) (*Note, error)
	AddNote(note *Note) error
	UpdateNoteContent(id int, content string, updatedAt time.Time) error
	DeleteNote(id int) error
	GetNotesPage(accountId, maxId, limit int) ([]*Note, error)
	AddRemoteNoteIfNew(note *RemoteNote) (isNew bool, err error)
	DeleteRemoteNote(objectId, actorUrl string) (found bool, err error)
	AddInteractionIfNew(interaction *Interaction) (isNew bool, err error)
	UndoInteractionByActivityId(activityId string) (found bool, err error)
	MarkActivityReceived(activity *ActivityInfo) (alreadyHandled bool, err error)
	SetActivityStatus(activityId, status, reason string) error
	AddDeliveryTask(task *DeliveryTask) error
	GetDueDeliveryTasks(due time.Time, maxCount int) ([]*DeliveryTask, int, error)
	ClaimDeliveryTask(id int) (claimed bool, err error)
	ReleaseDeliveryClaims() error
	UpdateDeliveryAttempt(id, attempts int, nextAttemptAt time.Time) error
	MarkDeliveryFailed(id int) error
	DeleteDeliveryTask(id int) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
	muId   sync.Mutex
	nextId uint64
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
		nextId: uint64(time.Now().UnixNano()),
	}

	return &repo
}

func (repo *Repo) GetNextId() uint64 {
	repo.muId.Lock()
	res := repo.nextId + 1
	repo.nextId = res
	repo.muId.Unlock()
	return res
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}
}

// isDupErr tells if err is sqlite's unique constraint violation.
func isDupErr(err error) bool {
	if sqliteErr, ok := err.(sqlite3.Error); ok {
		if sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067 {
			return true
		}
	}
	return false
}

// === Accounts ==============================================================

func (repo *Repo) AddAccountIfNotExist(acct *Account, privKey string) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO accounts
    	(created_at, user_url, handle, name, summary, pubkey, privkey)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		acct.CreatedAt, acct.UserUrl, acct.Handle, acct.Name, acct.Summary, acct.PubKey, privKey)
	if err == nil {
		return
	}
	// Duplicate key: account with this handle already exists
	if isDupErr(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) DoesAccountExist(handle string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM accounts WHERE handle=?`, handle)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

func (repo *Repo) GetAccount(handle string) (*Account, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	return repo.getAccount(handle)
}

func (repo *Repo) getAccount(handle string) (*Account, error) {

	row := repo.db.QueryRow(
		`SELECT id, created_at, user_url, handle, name, summary, pubkey
		FROM accounts WHERE handle=?`, handle)
	var err error
	var res Account
	err = row.Scan(&res.Id, &res.CreatedAt, &res.UserUrl, &res.Handle, &res.Name, &res.Summary, &res.PubKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) GetPrivKey(handle string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT privkey FROM accounts WHERE handle=?`, handle)
	var err error
	var res string
	err = row.Scan(&res)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		} else {
			return "", err
		}
	}
	return res, nil
}

func (repo *Repo) SetKeyPair(handle, pubKey, privKey string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec("UPDATE accounts SET pubkey=?, privkey=? WHERE handle=?", pubKey, privKey, handle)
	if err != nil {
		return err
	}
	return nil
}

// === Remote actors =========================================================

func (repo *Repo) GetRemoteActor(userUrl string) (*RemoteActor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(
		`SELECT id, user_url, handle, host, inbox, shared_inbox, pubkey, name, summary, refreshed_at
		FROM remote_actors WHERE user_url=?`, userUrl)
	return readRemoteActor(row)
}

func (repo *Repo) GetRemoteActorByHandle(handle, host string) (*RemoteActor, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(
		`SELECT id, user_url, handle, host, inbox, shared_inbox, pubkey, name, summary, refreshed_at
		FROM remote_actors WHERE handle=? AND host=?`, handle, host)
	return readRemoteActor(row)
}

func readRemoteActor(row *sql.Row) (*RemoteActor, error) {
	var res RemoteActor
	err := row.Scan(&res.Id, &res.UserUrl, &res.Handle, &res.Host, &res.Inbox, &res.SharedInbox,
		&res.PubKey, &res.Name, &res.Summary, &res.RefreshedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) UpsertRemoteActor(actor *RemoteActor) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Refresh may race; last writer wins. The cached document is advisory
	// and gets re-verified cryptographically on each use.
	_, err := repo.db.Exec(`INSERT INTO remote_actors
		(user_url, handle, host, inbox, shared_inbox, pubkey, name, summary, refreshed_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_url) DO UPDATE SET handle=excluded.handle, host=excluded.host,
			inbox=excluded.inbox, shared_inbox=excluded.shared_inbox, pubkey=excluded.pubkey,
			name=excluded.name, summary=excluded.summary, refreshed_at=excluded.refreshed_at`,
		actor.UserUrl, actor.Handle, actor.Host, actor.Inbox, actor.SharedInbox,
		actor.PubKey, actor.Name, actor.Summary, actor.RefreshedAt)
	return err
}

// === Followers =============================================================

func (repo *Repo) AddFollower(handle string, flwr *FollowerInfo) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	row := repo.db.QueryRow(`SELECT id FROM accounts WHERE handle=?`, handle)
	var err error
	var accountId int
	if err = row.Scan(&accountId); err != nil {
		return err
	}
	// Re-follow after undo reactivates the same edge
	_, err = repo.db.Exec(`INSERT INTO followers
		(account_id, request_id, status, user_url, handle, host, user_inbox, shared_inbox)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (account_id, user_url) DO UPDATE SET request_id=excluded.request_id,
			status=excluded.status, user_inbox=excluded.user_inbox, shared_inbox=excluded.shared_inbox`,
		accountId, flwr.RequestId, flwr.Status, flwr.UserUrl, flwr.Handle, flwr.Host,
		flwr.UserInbox, flwr.SharedInbox)
	if err != nil {
		return err
	}
	return nil
}

func (repo *Repo) SetFollowerStatus(handle, followerUserUrl string, status int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	acct, err := repo.getAccount(handle)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("no such account: %s", handle)
	}
	_, err = repo.db.Exec(`UPDATE followers SET status=? WHERE account_id=? AND user_url=?`,
		status, acct.Id, followerUserUrl)
	if err != nil {
		return err
	}
	return nil
}

func (repo *Repo) UndoFollowerByRequestId(requestId string) (found bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var res sql.Result
	res, err = repo.db.Exec(`UPDATE followers SET status=? WHERE request_id=? AND status<>?`,
		FollowUndone, requestId, FollowUndone)
	if err != nil {
		return
	}
	var affected int64
	if affected, err = res.RowsAffected(); err != nil {
		return
	}
	found = affected > 0
	return
}

func (repo *Repo) GetFollowers(handle string, onlyAccepted bool) ([]*FollowerInfo, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT followers.id, followers.request_id, followers.status, followers.user_url,
			followers.handle, host, user_inbox, shared_inbox
		FROM followers JOIN accounts ON followers.account_id=accounts.id AND accounts.handle=?`
	if onlyAccepted {
		query += ` WHERE followers.status=1`
	}
	rows, err := repo.db.Query(query, handle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readFollowers(rows)
}

func (repo *Repo) GetFollowerCount(handle string, onlyAccepted bool) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	query := `SELECT COUNT(*) FROM followers JOIN accounts
		ON followers.account_id=accounts.id AND accounts.handle=?`
	if onlyAccepted {
		query += ` WHERE followers.status=1`
	}
	row := repo.db.QueryRow(query, handle)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) GetFollowersPage(accountId, maxId, limit int) ([]*FollowerInfo, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, request_id, status, user_url, handle, host, user_inbox, shared_inbox
		FROM followers WHERE account_id=? AND status=1 AND (?=0 OR id<?)
		ORDER BY id DESC LIMIT ?`, accountId, maxId, maxId, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return readFollowers(rows)
}

func readFollowers(rows *sql.Rows) ([]*FollowerInfo, error) {
	var err error
	res := make([]*FollowerInfo, 0)
	for rows.Next() {
		fi := FollowerInfo{}
		err = rows.Scan(&fi.Id, &fi.RequestId, &fi.Status, &fi.UserUrl, &fi.Handle, &fi.Host,
			&fi.UserInbox, &fi.SharedInbox)
		if err != nil {
			return nil, err
		}
		res = append(res, &fi)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// === Notes =================================================================

func (repo *Repo) GetNoteCount(handle string) (uint, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM notes JOIN accounts
		ON notes.account_id=accounts.id AND accounts.handle=?`, handle)
	var err error
	var count int
	if err = row.Scan(&count); err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (repo *Repo) GetNoteByUrlHash(accountId int, urlHash int64, contentUrl string) (*Note, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	// content_url double-checked in case of a hash collision
	row := repo.db.QueryRow(`SELECT id, account_id, url_hash, content_url, object_id, content,
    		published_at, updated_at
		FROM notes WHERE account_id=? AND url_hash=? AND content_url=?`, accountId, urlHash, contentUrl)
	return readNote(row)
}

func (repo *Repo) GetNoteByObjectId(objectId string) (*Note, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, account_id, url_hash, content_url, object_id, content,
    		published_at, updated_at
		FROM notes WHERE object_id=?`, objectId)
	return readNote(row)
}

func readNote(row *sql.Row) (*Note, error) {
	var res Note
	err := row.Scan(&res.Id, &res.AccountId, &res.UrlHash, &res.ContentUrl, &res.ObjectId,
		&res.Content, &res.PublishedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	return &res, nil
}

func (repo *Repo) AddNote(note *Note) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO notes
		(account_id, url_hash, content_url, object_id, content, published_at, updated_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		note.AccountId, note.UrlHash, note.ContentUrl, note.ObjectId, note.Content,
		note.PublishedAt, note.UpdatedAt)
	return err
}

func (repo *Repo) UpdateNoteContent(id int, content string, updatedAt time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE notes SET content=?, updated_at=? WHERE id=?`,
		content, updatedAt, id)
	return err
}

func (repo *Repo) DeleteNote(id int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM notes WHERE id=?`, id)
	return err
}

func (repo *Repo) GetNotesPage(accountId, maxId, limit int) ([]*Note, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, account_id, url_hash, content_url, object_id, content,
			published_at, updated_at
		FROM notes WHERE account_id=? AND (?=0 OR id<?) ORDER BY id DESC LIMIT ?`,
		accountId, maxId, maxId, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Note, 0)
	for rows.Next() {
		n := Note{}
		err = rows.Scan(&n.Id, &n.AccountId, &n.UrlHash, &n.ContentUrl, &n.ObjectId, &n.Content,
			&n.PublishedAt, &n.UpdatedAt)
		if err != nil {
			return nil, err
		}
		res = append(res, &n)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) AddRemoteNoteIfNew(note *RemoteNote) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO remote_notes
		(object_id, actor_url, object_type, content, in_reply_to, raw, published_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		note.ObjectId, note.ActorUrl, note.ObjectType, note.Content, note.InReplyTo,
		note.Raw, note.PublishedAt)
	if err == nil {
		return
	}
	// Duplicate key: object already stored
	if isDupErr(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) DeleteRemoteNote(objectId, actorUrl string) (found bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Only the object's own author may delete it
	var res sql.Result
	res, err = repo.db.Exec(`DELETE FROM remote_notes WHERE object_id=? AND actor_url=?`,
		objectId, actorUrl)
	if err != nil {
		return
	}
	var affected int64
	if affected, err = res.RowsAffected(); err != nil {
		return
	}
	found = affected > 0
	return
}

// === Interactions ==========================================================

func (repo *Repo) AddInteractionIfNew(interaction *Interaction) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// A live duplicate leaves the row untouched; an undone one is
	// reactivated under the new activity id
	var res sql.Result
	res, err = repo.db.Exec(`INSERT INTO interactions (note_id, actor_url, kind, activity_id, undone)
		VALUES(?, ?, ?, ?, 0)
		ON CONFLICT (note_id, actor_url, kind) DO UPDATE SET
			activity_id=excluded.activity_id, undone=0
		WHERE interactions.undone=1`,
		interaction.NoteId, interaction.ActorUrl, interaction.Kind, interaction.ActivityId)
	if err != nil {
		return
	}
	var affected int64
	if affected, err = res.RowsAffected(); err != nil {
		return
	}
	isNew = affected > 0
	return
}

func (repo *Repo) UndoInteractionByActivityId(activityId string) (found bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var res sql.Result
	res, err = repo.db.Exec(`UPDATE interactions SET undone=1 WHERE activity_id=? AND undone=0`,
		activityId)
	if err != nil {
		return
	}
	var affected int64
	if affected, err = res.RowsAffected(); err != nil {
		return
	}
	found = affected > 0
	return
}

// === Activities ============================================================

func (repo *Repo) MarkActivityReceived(activity *ActivityInfo) (alreadyHandled bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	alreadyHandled = false
	err = nil

	// The unique constraint on activity_id is the dedup primitive: of two
	// near-simultaneous deliveries only one insert can succeed.
	_, err = repo.db.Exec(`INSERT INTO activities
		(activity_id, type, actor_url, direction, status, reason, handled_at)
		VALUES(?, ?, ?, ?, ?, '', ?)`,
		activity.ActivityId, activity.Type, activity.ActorUrl, activity.Direction,
		activity.Status, activity.HandledAt)

	if err == nil {
		return
	}

	if !isDupErr(err) {
		return
	}
	err = nil

	// Duplicate key: the activity was seen before. A row still in 'received'
	// means an earlier attempt died before reaching a final status; re-claim
	// it so the peer's redelivery can complete the work. Side effects are
	// idempotent, so an overlap with a live attempt is harmless.
	var res sql.Result
	res, err = repo.db.Exec(`UPDATE activities SET handled_at=? WHERE activity_id=? AND status=?`,
		activity.HandledAt, activity.ActivityId, ActivityReceived)
	if err != nil {
		return
	}
	var affected int64
	if affected, err = res.RowsAffected(); err != nil {
		return
	}
	alreadyHandled = affected == 0

	return
}

func (repo *Repo) SetActivityStatus(activityId, status, reason string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE activities SET status=?, reason=? WHERE activity_id=?`,
		status, reason, activityId)
	return err
}

// === Delivery queue ========================================================

func (repo *Repo) AddDeliveryTask(task *DeliveryTask) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO delivery_queue
		(sending_user, to_inbox, activity_id, payload, attempts, next_attempt_at, status)
		VALUES(?, ?, ?, ?, 0, ?, 0)`,
		task.SendingUser, task.ToInbox, task.ActivityId, task.Payload, task.NextAttemptAt)
	return err
}

func (repo *Repo) GetDueDeliveryTasks(due time.Time, maxCount int) ([]*DeliveryTask, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var qlen int
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM delivery_queue WHERE status>=0`)
	if err := row.Scan(&qlen); err != nil {
		return nil, 0, err
	}

	rows, err := repo.db.Query(`SELECT id, sending_user, to_inbox, activity_id, payload,
			attempts, next_attempt_at, status
		FROM delivery_queue WHERE status=0 AND next_attempt_at<=? ORDER BY id ASC LIMIT ?`,
		due, maxCount)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	res := make([]*DeliveryTask, 0, maxCount)
	for rows.Next() {
		dt := DeliveryTask{}
		err = rows.Scan(&dt.Id, &dt.SendingUser, &dt.ToInbox, &dt.ActivityId, &dt.Payload,
			&dt.Attempts, &dt.NextAttemptAt, &dt.Status)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, &dt)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return res, qlen, nil
}

// ClaimDeliveryTask is a compare-and-set on the task's status: of two
// dispatchers working the same queue only one gets each task.
func (repo *Repo) ClaimDeliveryTask(id int) (claimed bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var res sql.Result
	res, err = repo.db.Exec(`UPDATE delivery_queue SET status=? WHERE id=? AND status=?`,
		DeliveryClaimed, id, DeliveryPending)
	if err != nil {
		return
	}
	var affected int64
	if affected, err = res.RowsAffected(); err != nil {
		return
	}
	claimed = affected > 0
	return
}

// ReleaseDeliveryClaims returns claimed tasks to the pending pool. Claims die
// with the process that took them; this runs when a dispatcher starts up.
func (repo *Repo) ReleaseDeliveryClaims() error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE delivery_queue SET status=? WHERE status=?`,
		DeliveryPending, DeliveryClaimed)
	return err
}

func (repo *Repo) UpdateDeliveryAttempt(id, attempts int, nextAttemptAt time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	// Rescheduling releases the claim
	_, err := repo.db.Exec(`UPDATE delivery_queue SET attempts=?, next_attempt_at=?, status=? WHERE id=?`,
		attempts, nextAttemptAt, DeliveryPending, id)
	return err
}

func (repo *Repo) MarkDeliveryFailed(id int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE delivery_queue SET status=? WHERE id=?`, DeliveryFailed, id)
	return err
}

func (repo *Repo) DeleteDeliveryTask(id int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM delivery_queue WHERE id=?`, id)
	return err
}
