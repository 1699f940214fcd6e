package memory

import (
	"testing"
	"time"

	"kama_social_server/internal/model"
	"kama_social_server/pkg/errorx"
)

func validUser(username string) *model.User {
	return &model.User{
		FirstName: "Ana",
		LastName:  "Popescu",
		Username:  username,
		Password:  "parola",
	}
}

func TestSaveAssignsIdWhenZero(t *testing.T) {
	repo := NewUserRepository()
	saved, err := repo.Save(validUser("anapopescu"))
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == 0 {
		t.Error("id 为 0 时应模拟自增分配")
	}
}

func TestSaveKeepsPreassignedId(t *testing.T) {
	repo := NewUserRepository()
	user := validUser("anapopescu")
	user.ID = 17
	saved, err := repo.Save(user)
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID != 17 {
		t.Errorf("预分配的 id 应原样写入, got %d", saved.ID)
	}

	// 自增要跳过已占用的 id
	next, err := repo.Save(validUser("ionionescu"))
	if err != nil {
		t.Fatal(err)
	}
	if next.ID != 18 {
		t.Errorf("后续自增应从 18 开始, got %d", next.ID)
	}
}

func TestFindOneNotFound(t *testing.T) {
	repo := NewUserRepository()
	_, err := repo.FindOne(99)
	if !errorx.IsNotFound(err) {
		t.Errorf("未找到应返回 CodeNotFound, got %v", err)
	}
}

func TestDeleteReturnsPriorRow(t *testing.T) {
	repo := NewUserRepository()
	saved, err := repo.Save(validUser("anapopescu"))
	if err != nil {
		t.Fatal(err)
	}

	deleted, err := repo.Delete(saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if deleted.Username != "anapopescu" {
		t.Errorf("应返回删除前的行, got %+v", deleted)
	}

	if _, err := repo.FindOne(saved.ID); !errorx.IsNotFound(err) {
		t.Errorf("删除后查询应返回 CodeNotFound, got %v", err)
	}
	if _, err := repo.Delete(saved.ID); !errorx.IsNotFound(err) {
		t.Errorf("重复删除应返回 CodeNotFound, got %v", err)
	}
}

func TestUpdateRejectsMissingRow(t *testing.T) {
	repo := NewUserRepository()
	user := validUser("anapopescu")
	user.ID = 99
	if _, err := repo.Update(user); !errorx.IsNotFound(err) {
		t.Errorf("更新不存在的行应返回 CodeNotFound, got %v", err)
	}
}

func TestSaveValidatesEntity(t *testing.T) {
	repo := NewUserRepository()
	if _, err := repo.Save(&model.User{Username: "ab"}); !errorx.IsValidation(err) {
		t.Errorf("非法实体应校验失败, got %v", err)
	}
}

func TestFriendshipUpdatePreservesFriendsFrom(t *testing.T) {
	repo := NewFriendshipRepository()
	origin := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	saved, err := repo.Save(&model.Friendship{User1ID: 1, User2ID: 2, FriendsFrom: origin})
	if err != nil {
		t.Fatal(err)
	}

	saved.User2ID = 3
	saved.FriendsFrom = origin.Add(48 * time.Hour) // 尝试改写时间戳
	updated, err := repo.Update(saved)
	if err != nil {
		t.Fatal(err)
	}
	if !updated.FriendsFrom.Equal(origin) {
		t.Errorf("成为好友时间不应被更新改写, got %v", updated.FriendsFrom)
	}
	if updated.User2ID != 3 {
		t.Errorf("其余字段应正常更新, got %+v", updated)
	}
}
