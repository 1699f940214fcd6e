package relationship

import (
	"testing"

	"kama_social_server/internal/dao/memory"
	"kama_social_server/internal/event"
	"kama_social_server/internal/model"
	"kama_social_server/pkg/errorx"
)

func newTestService() (*Service, *event.Bus) {
	bus := event.NewBus()
	return NewService(memory.NewRepositories(), bus), bus
}

func mustAddUser(t *testing.T, s *Service, first, last, username string) *model.User {
	t.Helper()
	user, err := s.AddUser(&model.User{
		FirstName: first,
		LastName:  last,
		Username:  username,
		Password:  "parola",
	})
	if err != nil {
		t.Fatalf("AddUser(%s) failed: %v", username, err)
	}
	return user
}

// ==================== 用户 ====================

func TestAddUserAssignsSequentialIds(t *testing.T) {
	s, _ := newTestService()

	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")

	if ana.ID != 1 || ion.ID != 2 {
		t.Errorf("id 应从 1 开始递增, got %d, %d", ana.ID, ion.ID)
	}
}

func TestCounterSeedsFromExistingRows(t *testing.T) {
	repos := memory.NewRepositories()
	if _, err := repos.User.Save(&model.User{
		ID: 41, FirstName: "Ana", LastName: "Popescu",
		Username: "anapopescu", Password: "parola",
	}); err != nil {
		t.Fatal(err)
	}

	s := NewService(repos, event.NewBus())
	user := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")
	if user.ID != 42 {
		t.Errorf("计数器应播种为 max(id)+1, got %d", user.ID)
	}
}

func TestAddUserRejectsInvalidEntity(t *testing.T) {
	s, _ := newTestService()

	_, err := s.AddUser(&model.User{
		FirstName: "Ana1", LastName: "Popescu",
		Username: "ab", Password: "p",
	})
	if !errorx.IsValidation(err) {
		t.Fatalf("非法实体应返回校验错误, got %v", err)
	}

	users, _ := s.GetUsers()
	if len(users) != 0 {
		t.Errorf("校验失败后不应有用户入库, got %d", len(users))
	}
}

func TestDuplicateUsernamesAreAllowed(t *testing.T) {
	s, _ := newTestService()
	mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	mustAddUser(t, s, "Anca", "Pop", "anapopescu")

	users, err := s.GetUsers()
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("重名用户应都能入库, got %d", len(users))
	}

	found, err := s.FindUserByUsername("anapopescu")
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.Username != "anapopescu" {
		t.Errorf("应返回其中一个匹配用户, got %+v", found)
	}
}

func TestFindUserByUsernameIsCaseSensitive(t *testing.T) {
	s, _ := newTestService()
	mustAddUser(t, s, "Ana", "Popescu", "anapopescu")

	found, err := s.FindUserByUsername("AnaPopescu")
	if err != nil {
		t.Fatal(err)
	}
	if found != nil {
		t.Errorf("大小写不同不应匹配, got %+v", found)
	}
}

func TestGetUserByIDNotFoundReturnsNil(t *testing.T) {
	s, _ := newTestService()
	user, err := s.GetUserByID(99)
	if err != nil {
		t.Fatalf("未找到应返回 (nil, nil), got err=%v", err)
	}
	if user != nil {
		t.Errorf("未找到应返回 nil 用户, got %+v", user)
	}
}

func TestUpdateUserNotFoundIsSilent(t *testing.T) {
	s, bus := newTestService()
	rec := &userRecorder{}
	bus.User.Subscribe(rec)

	updated, err := s.UpdateUser(&model.User{
		ID: 99, FirstName: "Ana", LastName: "Popescu",
		Username: "anapopescu", Password: "parola",
	})
	if err != nil || updated != nil {
		t.Errorf("未找到应静默返回 (nil, nil), got %+v, %v", updated, err)
	}
	if len(rec.events) != 0 {
		t.Errorf("未找到不应发布事件, got %d", len(rec.events))
	}
}

func TestUpdateUserCarriesOldVersion(t *testing.T) {
	s, bus := newTestService()
	rec := &userRecorder{}
	bus.User.Subscribe(rec)

	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ana.LastName = "Ionescu"
	updated, err := s.UpdateUser(ana)
	if err != nil {
		t.Fatal(err)
	}
	if updated.LastName != "Ionescu" {
		t.Errorf("更新未生效: %+v", updated)
	}

	// 事件序列: ADD, UPDATE
	if len(rec.events) != 2 {
		t.Fatalf("期望 2 个事件, got %d", len(rec.events))
	}
	up := rec.events[1]
	if up.Type != event.Update {
		t.Errorf("第二个事件应为 UPDATE, got %s", up.Type)
	}
	if up.Old == nil || up.Old.LastName != "Popescu" {
		t.Errorf("UPDATE 事件应携带旧版本, got %+v", up.Old)
	}
}

// ==================== 登录 ====================

func TestLogin(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")

	user, err := s.Login("anapopescu", "parola")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != ana.ID {
		t.Errorf("登录返回了错误的用户: %+v", user)
	}
	if s.CurrentUserID() != ana.ID {
		t.Errorf("登录后应记录当前用户, got %d", s.CurrentUserID())
	}

	s.Logout()
	if s.CurrentUserID() != 0 {
		t.Errorf("登出后当前用户应清零, got %d", s.CurrentUserID())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s, _ := newTestService()
	mustAddUser(t, s, "Ana", "Popescu", "anapopescu")

	if _, err := s.Login("anapopescu", "gresit"); err != errorx.ErrInvalidPassword {
		t.Errorf("密码错误应返回 ErrInvalidPassword, got %v", err)
	}
	if s.CurrentUserID() != 0 {
		t.Errorf("登录失败不应记录当前用户, got %d", s.CurrentUserID())
	}
}

func TestLoginUnknownUser(t *testing.T) {
	s, _ := newTestService()
	if _, err := s.Login("necunoscut", "parola"); err != errorx.ErrUserNotExist {
		t.Errorf("用户不存在应返回 ErrUserNotExist, got %v", err)
	}
}

// ==================== 好友关系 ====================

func TestAddFriendshipRejectsSymmetricDuplicate(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")

	if _, err := s.AddFriendship(ana.ID, ion.ID); err != nil {
		t.Fatal(err)
	}
	// 反方向也算重复
	if _, err := s.AddFriendship(ion.ID, ana.ID); err != errorx.ErrFriendshipExists {
		t.Errorf("反向重复应返回 ErrFriendshipExists, got %v", err)
	}

	all, _ := s.GetFriendships()
	if len(all) != 1 {
		t.Errorf("重复创建失败后关系数应不变, got %d", len(all))
	}
}

func TestAddFriendshipSetsFriendsFrom(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")

	f, err := s.AddFriendship(ana.ID, ion.ID)
	if err != nil {
		t.Fatal(err)
	}
	if f.FriendsFrom.IsZero() {
		t.Error("成为好友时间应在创建时写入")
	}
}

func TestGetFriendshipsOfUser(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")
	dan := mustAddUser(t, s, "Dan", "Danescu", "dandanescu")

	if _, err := s.AddFriendship(ana.ID, ion.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddFriendship(ion.ID, dan.ID); err != nil {
		t.Fatal(err)
	}

	ofIon, err := s.GetFriendshipsOfUser(ion.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ofIon) != 2 {
		t.Errorf("ion 应有 2 条关系, got %d", len(ofIon))
	}

	ofAna, _ := s.GetFriendshipsOfUser(ana.ID)
	if len(ofAna) != 1 {
		t.Errorf("ana 应有 1 条关系, got %d", len(ofAna))
	}
}

func TestDeleteFriendshipNotFoundIsSilent(t *testing.T) {
	s, bus := newTestService()
	rec := &friendshipRecorder{}
	bus.Friendship.Subscribe(rec)

	deleted, err := s.DeleteFriendship(99)
	if err != nil || deleted != nil {
		t.Errorf("未找到应静默返回 (nil, nil), got %+v, %v", deleted, err)
	}
	if len(rec.events) != 0 {
		t.Errorf("未找到不应发布事件, got %d", len(rec.events))
	}
}

func TestDeleteFriendshipReturnsPriorRow(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")
	f, _ := s.AddFriendship(ana.ID, ion.ID)

	deleted, err := s.DeleteFriendship(f.ID)
	if err != nil {
		t.Fatal(err)
	}
	if deleted == nil || !deleted.Connects(ana.ID, ion.ID) {
		t.Errorf("应返回删除前的行, got %+v", deleted)
	}

	all, _ := s.GetFriendships()
	if len(all) != 0 {
		t.Errorf("删除后关系应为空, got %d", len(all))
	}
}

// ==================== 好友申请 ====================

func TestAddRequestRejectsExistingFriendship(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")
	if _, err := s.AddFriendship(ana.ID, ion.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := s.AddRequest(ana.ID, ion.ID); err != errorx.ErrFriendshipExists {
		t.Errorf("已是好友应返回 ErrFriendshipExists, got %v", err)
	}
}

func TestAddRequestRejectsDuplicateOrderedPair(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")

	if _, err := s.AddRequest(ana.ID, ion.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddRequest(ana.ID, ion.ID); err != errorx.ErrRequestExists {
		t.Errorf("相同有序对应返回 ErrRequestExists, got %v", err)
	}
}

func TestReciprocalRequestPromotesToFriendship(t *testing.T) {
	s, bus := newTestService()
	reqRec := &requestRecorder{}
	bus.Request.Subscribe(reqRec)

	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")

	first, err := s.AddRequest(ana.ID, ion.ID)
	if err != nil {
		t.Fatal(err)
	}

	// 反向申请触发自动提升
	promoted, err := s.AddRequest(ion.ID, ana.ID)
	if err != nil {
		t.Fatal(err)
	}
	if promoted != nil {
		t.Errorf("提升时应返回空申请, got %+v", promoted)
	}

	friendships, _ := s.GetFriendships()
	if len(friendships) != 1 || !friendships[0].Connects(ana.ID, ion.ID) {
		t.Fatalf("应创建一条好友关系, got %+v", friendships)
	}

	requests, _ := s.GetRequests()
	if len(requests) != 0 {
		t.Errorf("原申请应被删除, got %+v", requests)
	}

	// 事件序列: ADD(首次申请), DELETE(互反申请被消费)
	if len(reqRec.events) != 2 {
		t.Fatalf("期望 2 个申请事件, got %d", len(reqRec.events))
	}
	if reqRec.events[0].Type != event.Add || reqRec.events[0].Request.ID != first.ID {
		t.Errorf("第一个事件应为首次申请的 ADD, got %+v", reqRec.events[0])
	}
	if reqRec.events[1].Type != event.Delete || reqRec.events[1].Request.ID != first.ID {
		t.Errorf("第二个事件应为互反申请的 DELETE, got %+v", reqRec.events[1])
	}
}

func TestGetRequestsByReceiver(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")
	dan := mustAddUser(t, s, "Dan", "Danescu", "dandanescu")

	if _, err := s.AddRequest(ana.ID, dan.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddRequest(ion.ID, dan.ID); err != nil {
		t.Fatal(err)
	}

	toDan, err := s.GetRequestsByReceiver(dan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(toDan) != 2 {
		t.Errorf("dan 应收到 2 条申请, got %d", len(toDan))
	}
}

func TestGetRequestsToUserFiltersBySender(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")
	dan := mustAddUser(t, s, "Dan", "Danescu", "dandanescu")

	if _, err := s.AddRequest(ana.ID, dan.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddRequest(ion.ID, ana.ID); err != nil {
		t.Fatal(err)
	}

	// 返回的是 ana 发出的申请，不是发给 ana 的申请
	ofAna, err := s.GetRequestsToUser(ana.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ofAna) != 1 || ofAna[0].SenderID != ana.ID {
		t.Errorf("应按发起方过滤, got %+v", ofAna)
	}
}

func TestDeleteRequestNotFoundIsSilent(t *testing.T) {
	s, _ := newTestService()
	deleted, err := s.DeleteRequest(99)
	if err != nil || deleted != nil {
		t.Errorf("未找到应静默返回 (nil, nil), got %+v, %v", deleted, err)
	}
}

// ==================== 级联删除 ====================

func TestDeleteUserCascades(t *testing.T) {
	s, _ := newTestService()
	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")
	ion := mustAddUser(t, s, "Ion", "Ionescu", "ionionescu")
	dan := mustAddUser(t, s, "Dan", "Danescu", "dandanescu")

	if _, err := s.AddFriendship(ana.ID, ion.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddFriendship(ion.ID, dan.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddRequest(ana.ID, dan.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddRequest(dan.ID, ion.ID); err != nil {
		t.Fatal(err)
	}

	deleted, err := s.DeleteUser(ion.ID)
	if err != nil {
		t.Fatal(err)
	}
	if deleted == nil || deleted.ID != ion.ID {
		t.Fatalf("应返回被删除的用户, got %+v", deleted)
	}

	// ion 涉及的关系和申请全部清理，其它记录保留
	friendships, _ := s.GetFriendships()
	if len(friendships) != 0 {
		t.Errorf("ion 的好友关系应全部删除, got %+v", friendships)
	}
	requests, _ := s.GetRequests()
	if len(requests) != 1 || !requests[0].Involves(ana.ID) {
		t.Errorf("只应保留不涉及 ion 的申请, got %+v", requests)
	}
	users, _ := s.GetUsers()
	if len(users) != 2 {
		t.Errorf("其余用户应保留, got %d", len(users))
	}
}

func TestDeleteUserNotFoundIsSilent(t *testing.T) {
	s, bus := newTestService()
	rec := &userRecorder{}
	bus.User.Subscribe(rec)

	deleted, err := s.DeleteUser(99)
	if err != nil || deleted != nil {
		t.Errorf("未找到应静默返回 (nil, nil), got %+v, %v", deleted, err)
	}
	if len(rec.events) != 0 {
		t.Errorf("未找到不应发布事件, got %d", len(rec.events))
	}
}

// ==================== 会话状态 ====================

func TestSelectedUserSlot(t *testing.T) {
	s, _ := newTestService()
	if s.SelectedUserID() != 0 {
		t.Errorf("初始应为 0, got %d", s.SelectedUserID())
	}
	s.SetSelectedUserID(7)
	if s.SelectedUserID() != 7 {
		t.Errorf("应返回设置的值, got %d", s.SelectedUserID())
	}
}

// ==================== 观察者 ====================

type userRecorder struct{ events []event.UserEvent }

func (r *userRecorder) Notify(ev event.UserEvent) { r.events = append(r.events, ev) }

type friendshipRecorder struct{ events []event.FriendshipEvent }

func (r *friendshipRecorder) Notify(ev event.FriendshipEvent) { r.events = append(r.events, ev) }

type requestRecorder struct{ events []event.RequestEvent }

func (r *requestRecorder) Notify(ev event.RequestEvent) { r.events = append(r.events, ev) }

func TestEventsFanOutToAllObservers(t *testing.T) {
	s, bus := newTestService()
	first := &userRecorder{}
	second := &userRecorder{}
	bus.User.Subscribe(first)
	bus.User.Subscribe(second)

	ana := mustAddUser(t, s, "Ana", "Popescu", "anapopescu")

	for _, rec := range []*userRecorder{first, second} {
		if len(rec.events) != 1 {
			t.Fatalf("每个观察者都应收到事件, got %d", len(rec.events))
		}
		if rec.events[0].Type != event.Add || rec.events[0].User.ID != ana.ID {
			t.Errorf("事件负载错误: %+v", rec.events[0])
		}
	}
}
