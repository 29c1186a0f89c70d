// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: community/v1/feed.proto

package communitypb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type LoadAction int32

const (
	LoadAction_LOAD_ACTION_UNSPECIFIED LoadAction = 0
	LoadAction_LOAD_ACTION_INITIAL     LoadAction = 1
	LoadAction_LOAD_ACTION_REFRESH     LoadAction = 2
	LoadAction_LOAD_ACTION_MORE        LoadAction = 3
)

// Enum value maps for LoadAction.
var (
	LoadAction_name = map[int32]string{
		0: "LOAD_ACTION_UNSPECIFIED",
		1: "LOAD_ACTION_INITIAL",
		2: "LOAD_ACTION_REFRESH",
		3: "LOAD_ACTION_MORE",
	}
	LoadAction_value = map[string]int32{
		"LOAD_ACTION_UNSPECIFIED": 0,
		"LOAD_ACTION_INITIAL":     1,
		"LOAD_ACTION_REFRESH":     2,
		"LOAD_ACTION_MORE":        3,
	}
)

func (x LoadAction) Enum() *LoadAction {
	p := new(LoadAction)
	*p = x
	return p
}

func (x LoadAction) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (LoadAction) Descriptor() protoreflect.EnumDescriptor {
	return file_community_v1_feed_proto_enumTypes[0].Descriptor()
}

func (LoadAction) Type() protoreflect.EnumType {
	return &file_community_v1_feed_proto_enumTypes[0]
}

func (x LoadAction) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use LoadAction.Descriptor instead.
func (LoadAction) EnumDescriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{0}
}

// ListStatus reports the reconciler state after the action. The notice is
// one-shot: returned once, then cleared.
type ListStatus struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         string                 `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	HasMore       bool                   `protobuf:"varint,2,opt,name=has_more,json=hasMore,proto3" json:"has_more,omitempty"`
	Notice        string                 `protobuf:"bytes,3,opt,name=notice,proto3" json:"notice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStatus) Reset() {
	*x = ListStatus{}
	mi := &file_community_v1_feed_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStatus) ProtoMessage() {}

func (x *ListStatus) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStatus.ProtoReflect.Descriptor instead.
func (*ListStatus) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{0}
}

func (x *ListStatus) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *ListStatus) GetHasMore() bool {
	if x != nil {
		return x.HasMore
	}
	return false
}

func (x *ListStatus) GetNotice() string {
	if x != nil {
		return x.Notice
	}
	return ""
}

type NewsItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Summary       string                 `protobuf:"bytes,3,opt,name=summary,proto3" json:"summary,omitempty"`
	ImageUrl      string                 `protobuf:"bytes,4,opt,name=image_url,json=imageUrl,proto3" json:"image_url,omitempty"`
	Author        string                 `protobuf:"bytes,5,opt,name=author,proto3" json:"author,omitempty"`
	LikeCount     int32                  `protobuf:"varint,6,opt,name=like_count,json=likeCount,proto3" json:"like_count,omitempty"`
	CommentCount  int32                  `protobuf:"varint,7,opt,name=comment_count,json=commentCount,proto3" json:"comment_count,omitempty"`
	PublishedAt   string                 `protobuf:"bytes,8,opt,name=published_at,json=publishedAt,proto3" json:"published_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NewsItem) Reset() {
	*x = NewsItem{}
	mi := &file_community_v1_feed_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewsItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewsItem) ProtoMessage() {}

func (x *NewsItem) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewsItem.ProtoReflect.Descriptor instead.
func (*NewsItem) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{1}
}

func (x *NewsItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *NewsItem) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *NewsItem) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *NewsItem) GetImageUrl() string {
	if x != nil {
		return x.ImageUrl
	}
	return ""
}

func (x *NewsItem) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *NewsItem) GetLikeCount() int32 {
	if x != nil {
		return x.LikeCount
	}
	return 0
}

func (x *NewsItem) GetCommentCount() int32 {
	if x != nil {
		return x.CommentCount
	}
	return 0
}

func (x *NewsItem) GetPublishedAt() string {
	if x != nil {
		return x.PublishedAt
	}
	return ""
}

type GalleryImage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Url           string                 `protobuf:"bytes,3,opt,name=url,proto3" json:"url,omitempty"`
	ThumbnailUrl  string                 `protobuf:"bytes,4,opt,name=thumbnail_url,json=thumbnailUrl,proto3" json:"thumbnail_url,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	UploadedBy    string                 `protobuf:"bytes,6,opt,name=uploaded_by,json=uploadedBy,proto3" json:"uploaded_by,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,7,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GalleryImage) Reset() {
	*x = GalleryImage{}
	mi := &file_community_v1_feed_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GalleryImage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GalleryImage) ProtoMessage() {}

func (x *GalleryImage) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GalleryImage.ProtoReflect.Descriptor instead.
func (*GalleryImage) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{2}
}

func (x *GalleryImage) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GalleryImage) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *GalleryImage) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *GalleryImage) GetThumbnailUrl() string {
	if x != nil {
		return x.ThumbnailUrl
	}
	return ""
}

func (x *GalleryImage) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GalleryImage) GetUploadedBy() string {
	if x != nil {
		return x.UploadedBy
	}
	return ""
}

func (x *GalleryImage) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type ActiveUser struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FullName      string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	AvatarUrl     string                 `protobuf:"bytes,3,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	LastSeen      string                 `protobuf:"bytes,4,opt,name=last_seen,json=lastSeen,proto3" json:"last_seen,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ActiveUser) Reset() {
	*x = ActiveUser{}
	mi := &file_community_v1_feed_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ActiveUser) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ActiveUser) ProtoMessage() {}

func (x *ActiveUser) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ActiveUser.ProtoReflect.Descriptor instead.
func (*ActiveUser) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{3}
}

func (x *ActiveUser) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ActiveUser) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *ActiveUser) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

func (x *ActiveUser) GetLastSeen() string {
	if x != nil {
		return x.LastSeen
	}
	return ""
}

type Transaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	SubcategoryId string                 `protobuf:"bytes,3,opt,name=subcategory_id,json=subcategoryId,proto3" json:"subcategory_id,omitempty"`
	Title         string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Amount        float64                `protobuf:"fixed64,5,opt,name=amount,proto3" json:"amount,omitempty"`
	CurrencyCode  string                 `protobuf:"bytes,6,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	TxDate        string                 `protobuf:"bytes,7,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"`
	RecordedBy    string                 `protobuf:"bytes,8,opt,name=recorded_by,json=recordedBy,proto3" json:"recorded_by,omitempty"`
	Note          string                 `protobuf:"bytes,9,opt,name=note,proto3" json:"note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_community_v1_feed_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{4}
}

func (x *Transaction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Transaction) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Transaction) GetSubcategoryId() string {
	if x != nil {
		return x.SubcategoryId
	}
	return ""
}

func (x *Transaction) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Transaction) GetAmount() float64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *Transaction) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Transaction) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *Transaction) GetRecordedBy() string {
	if x != nil {
		return x.RecordedBy
	}
	return ""
}

func (x *Transaction) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

type Category struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Pinned        bool                   `protobuf:"varint,4,opt,name=pinned,proto3" json:"pinned,omitempty"`
	PinnedAt      string                 `protobuf:"bytes,5,opt,name=pinned_at,json=pinnedAt,proto3" json:"pinned_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Category) Reset() {
	*x = Category{}
	mi := &file_community_v1_feed_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Category) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Category) ProtoMessage() {}

func (x *Category) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Category.ProtoReflect.Descriptor instead.
func (*Category) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{5}
}

func (x *Category) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Category) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Category) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Category) GetPinned() bool {
	if x != nil {
		return x.Pinned
	}
	return false
}

func (x *Category) GetPinnedAt() string {
	if x != nil {
		return x.PinnedAt
	}
	return ""
}

type Subcategory struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CategoryId    string                 `protobuf:"bytes,2,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Subcategory) Reset() {
	*x = Subcategory{}
	mi := &file_community_v1_feed_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Subcategory) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Subcategory) ProtoMessage() {}

func (x *Subcategory) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Subcategory.ProtoReflect.Descriptor instead.
func (*Subcategory) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{6}
}

func (x *Subcategory) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Subcategory) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *Subcategory) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type Totals struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Income        float64                `protobuf:"fixed64,1,opt,name=income,proto3" json:"income,omitempty"`
	Expense       float64                `protobuf:"fixed64,2,opt,name=expense,proto3" json:"expense,omitempty"`
	Net           float64                `protobuf:"fixed64,3,opt,name=net,proto3" json:"net,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Totals) Reset() {
	*x = Totals{}
	mi := &file_community_v1_feed_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Totals) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Totals) ProtoMessage() {}

func (x *Totals) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Totals.ProtoReflect.Descriptor instead.
func (*Totals) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{7}
}

func (x *Totals) GetIncome() float64 {
	if x != nil {
		return x.Income
	}
	return 0
}

func (x *Totals) GetExpense() float64 {
	if x != nil {
		return x.Expense
	}
	return 0
}

func (x *Totals) GetNet() float64 {
	if x != nil {
		return x.Net
	}
	return 0
}

type LoadNewsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Action        LoadAction             `protobuf:"varint,1,opt,name=action,proto3,enum=community.v1.LoadAction" json:"action,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadNewsRequest) Reset() {
	*x = LoadNewsRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadNewsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadNewsRequest) ProtoMessage() {}

func (x *LoadNewsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadNewsRequest.ProtoReflect.Descriptor instead.
func (*LoadNewsRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{8}
}

func (x *LoadNewsRequest) GetAction() LoadAction {
	if x != nil {
		return x.Action
	}
	return LoadAction_LOAD_ACTION_UNSPECIFIED
}

type LoadNewsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*NewsItem            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	Status        *ListStatus            `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadNewsResponse) Reset() {
	*x = LoadNewsResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadNewsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadNewsResponse) ProtoMessage() {}

func (x *LoadNewsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadNewsResponse.ProtoReflect.Descriptor instead.
func (*LoadNewsResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{9}
}

func (x *LoadNewsResponse) GetItems() []*NewsItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *LoadNewsResponse) GetStatus() *ListStatus {
	if x != nil {
		return x.Status
	}
	return nil
}

type LoadGalleryRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Action LoadAction             `protobuf:"varint,1,opt,name=action,proto3,enum=community.v1.LoadAction" json:"action,omitempty"`
	// Optional status filter; setting it reloads from page 1.
	StatusFilter  string `protobuf:"bytes,2,opt,name=status_filter,json=statusFilter,proto3" json:"status_filter,omitempty"`
	ApplyFilter   bool   `protobuf:"varint,3,opt,name=apply_filter,json=applyFilter,proto3" json:"apply_filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadGalleryRequest) Reset() {
	*x = LoadGalleryRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadGalleryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadGalleryRequest) ProtoMessage() {}

func (x *LoadGalleryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadGalleryRequest.ProtoReflect.Descriptor instead.
func (*LoadGalleryRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{10}
}

func (x *LoadGalleryRequest) GetAction() LoadAction {
	if x != nil {
		return x.Action
	}
	return LoadAction_LOAD_ACTION_UNSPECIFIED
}

func (x *LoadGalleryRequest) GetStatusFilter() string {
	if x != nil {
		return x.StatusFilter
	}
	return ""
}

func (x *LoadGalleryRequest) GetApplyFilter() bool {
	if x != nil {
		return x.ApplyFilter
	}
	return false
}

type LoadGalleryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*GalleryImage        `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	Status        *ListStatus            `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadGalleryResponse) Reset() {
	*x = LoadGalleryResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadGalleryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadGalleryResponse) ProtoMessage() {}

func (x *LoadGalleryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadGalleryResponse.ProtoReflect.Descriptor instead.
func (*LoadGalleryResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{11}
}

func (x *LoadGalleryResponse) GetItems() []*GalleryImage {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *LoadGalleryResponse) GetStatus() *ListStatus {
	if x != nil {
		return x.Status
	}
	return nil
}

type LoadActiveUsersRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Action LoadAction             `protobuf:"varint,1,opt,name=action,proto3,enum=community.v1.LoadAction" json:"action,omitempty"`
	// YYYY-MM-DD; empty means today. Setting it reloads from page 1.
	Date          string `protobuf:"bytes,2,opt,name=date,proto3" json:"date,omitempty"`
	ApplyDate     bool   `protobuf:"varint,3,opt,name=apply_date,json=applyDate,proto3" json:"apply_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadActiveUsersRequest) Reset() {
	*x = LoadActiveUsersRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadActiveUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadActiveUsersRequest) ProtoMessage() {}

func (x *LoadActiveUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadActiveUsersRequest.ProtoReflect.Descriptor instead.
func (*LoadActiveUsersRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{12}
}

func (x *LoadActiveUsersRequest) GetAction() LoadAction {
	if x != nil {
		return x.Action
	}
	return LoadAction_LOAD_ACTION_UNSPECIFIED
}

func (x *LoadActiveUsersRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *LoadActiveUsersRequest) GetApplyDate() bool {
	if x != nil {
		return x.ApplyDate
	}
	return false
}

type LoadActiveUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*ActiveUser          `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	Status        *ListStatus            `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadActiveUsersResponse) Reset() {
	*x = LoadActiveUsersResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadActiveUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadActiveUsersResponse) ProtoMessage() {}

func (x *LoadActiveUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadActiveUsersResponse.ProtoReflect.Descriptor instead.
func (*LoadActiveUsersResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{13}
}

func (x *LoadActiveUsersResponse) GetItems() []*ActiveUser {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *LoadActiveUsersResponse) GetStatus() *ListStatus {
	if x != nil {
		return x.Status
	}
	return nil
}

type LoadTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Action        LoadAction             `protobuf:"varint,1,opt,name=action,proto3,enum=community.v1.LoadAction" json:"action,omitempty"`
	SubcategoryId string                 `protobuf:"bytes,2,opt,name=subcategory_id,json=subcategoryId,proto3" json:"subcategory_id,omitempty"`
	StartDate     string                 `protobuf:"bytes,3,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate       string                 `protobuf:"bytes,4,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	ApplyFilter   bool                   `protobuf:"varint,5,opt,name=apply_filter,json=applyFilter,proto3" json:"apply_filter,omitempty"`
	SortBy        string                 `protobuf:"bytes,6,opt,name=sort_by,json=sortBy,proto3" json:"sort_by,omitempty"`
	SortOrder     string                 `protobuf:"bytes,7,opt,name=sort_order,json=sortOrder,proto3" json:"sort_order,omitempty"`
	// For LOAD_ACTION_MORE: which list to extend, "income" or "expense".
	MoreKind      string `protobuf:"bytes,8,opt,name=more_kind,json=moreKind,proto3" json:"more_kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadTransactionsRequest) Reset() {
	*x = LoadTransactionsRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadTransactionsRequest) ProtoMessage() {}

func (x *LoadTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadTransactionsRequest.ProtoReflect.Descriptor instead.
func (*LoadTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{14}
}

func (x *LoadTransactionsRequest) GetAction() LoadAction {
	if x != nil {
		return x.Action
	}
	return LoadAction_LOAD_ACTION_UNSPECIFIED
}

func (x *LoadTransactionsRequest) GetSubcategoryId() string {
	if x != nil {
		return x.SubcategoryId
	}
	return ""
}

func (x *LoadTransactionsRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *LoadTransactionsRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *LoadTransactionsRequest) GetApplyFilter() bool {
	if x != nil {
		return x.ApplyFilter
	}
	return false
}

func (x *LoadTransactionsRequest) GetSortBy() string {
	if x != nil {
		return x.SortBy
	}
	return ""
}

func (x *LoadTransactionsRequest) GetSortOrder() string {
	if x != nil {
		return x.SortOrder
	}
	return ""
}

func (x *LoadTransactionsRequest) GetMoreKind() string {
	if x != nil {
		return x.MoreKind
	}
	return ""
}

type LoadTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*Transaction         `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	Totals        *Totals                `protobuf:"bytes,2,opt,name=totals,proto3" json:"totals,omitempty"`
	Donations     *ListStatus            `protobuf:"bytes,3,opt,name=donations,proto3" json:"donations,omitempty"`
	Expenses      *ListStatus            `protobuf:"bytes,4,opt,name=expenses,proto3" json:"expenses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadTransactionsResponse) Reset() {
	*x = LoadTransactionsResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadTransactionsResponse) ProtoMessage() {}

func (x *LoadTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadTransactionsResponse.ProtoReflect.Descriptor instead.
func (*LoadTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{15}
}

func (x *LoadTransactionsResponse) GetItems() []*Transaction {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *LoadTransactionsResponse) GetTotals() *Totals {
	if x != nil {
		return x.Totals
	}
	return nil
}

func (x *LoadTransactionsResponse) GetDonations() *ListStatus {
	if x != nil {
		return x.Donations
	}
	return nil
}

func (x *LoadTransactionsResponse) GetExpenses() *ListStatus {
	if x != nil {
		return x.Expenses
	}
	return nil
}

type ListCategoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesRequest) Reset() {
	*x = ListCategoriesRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesRequest) ProtoMessage() {}

func (x *ListCategoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesRequest.ProtoReflect.Descriptor instead.
func (*ListCategoriesRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{16}
}

type ListCategoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*Category            `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesResponse) Reset() {
	*x = ListCategoriesResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesResponse) ProtoMessage() {}

func (x *ListCategoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesResponse.ProtoReflect.Descriptor instead.
func (*ListCategoriesResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{17}
}

func (x *ListCategoriesResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type ListSubcategoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CategoryId    string                 `protobuf:"bytes,1,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubcategoriesRequest) Reset() {
	*x = ListSubcategoriesRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubcategoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubcategoriesRequest) ProtoMessage() {}

func (x *ListSubcategoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubcategoriesRequest.ProtoReflect.Descriptor instead.
func (*ListSubcategoriesRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{18}
}

func (x *ListSubcategoriesRequest) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

type ListSubcategoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subcategories []*Subcategory         `protobuf:"bytes,1,rep,name=subcategories,proto3" json:"subcategories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubcategoriesResponse) Reset() {
	*x = ListSubcategoriesResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubcategoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubcategoriesResponse) ProtoMessage() {}

func (x *ListSubcategoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubcategoriesResponse.ProtoReflect.Descriptor instead.
func (*ListSubcategoriesResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{19}
}

func (x *ListSubcategoriesResponse) GetSubcategories() []*Subcategory {
	if x != nil {
		return x.Subcategories
	}
	return nil
}

type PinCategoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CategoryId    string                 `protobuf:"bytes,1,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PinCategoryRequest) Reset() {
	*x = PinCategoryRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PinCategoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PinCategoryRequest) ProtoMessage() {}

func (x *PinCategoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PinCategoryRequest.ProtoReflect.Descriptor instead.
func (*PinCategoryRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{20}
}

func (x *PinCategoryRequest) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

type PinCategoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*Category            `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PinCategoryResponse) Reset() {
	*x = PinCategoryResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PinCategoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PinCategoryResponse) ProtoMessage() {}

func (x *PinCategoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PinCategoryResponse.ProtoReflect.Descriptor instead.
func (*PinCategoryResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{21}
}

func (x *PinCategoryResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type UnpinCategoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CategoryId    string                 `protobuf:"bytes,1,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnpinCategoryRequest) Reset() {
	*x = UnpinCategoryRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnpinCategoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnpinCategoryRequest) ProtoMessage() {}

func (x *UnpinCategoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnpinCategoryRequest.ProtoReflect.Descriptor instead.
func (*UnpinCategoryRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{22}
}

func (x *UnpinCategoryRequest) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

type UnpinCategoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*Category            `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnpinCategoryResponse) Reset() {
	*x = UnpinCategoryResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnpinCategoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnpinCategoryResponse) ProtoMessage() {}

func (x *UnpinCategoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnpinCategoryResponse.ProtoReflect.Descriptor instead.
func (*UnpinCategoryResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{23}
}

func (x *UnpinCategoryResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type ExportTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsRequest) Reset() {
	*x = ExportTransactionsRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsRequest) ProtoMessage() {}

func (x *ExportTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ExportTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{24}
}

type ExportTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsResponse) Reset() {
	*x = ExportTransactionsResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsResponse) ProtoMessage() {}

func (x *ExportTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ExportTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{25}
}

func (x *ExportTransactionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportTransactionsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type SaveTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveTokenRequest) Reset() {
	*x = SaveTokenRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveTokenRequest) ProtoMessage() {}

func (x *SaveTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveTokenRequest.ProtoReflect.Descriptor instead.
func (*SaveTokenRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{26}
}

func (x *SaveTokenRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type SaveTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveTokenResponse) Reset() {
	*x = SaveTokenResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveTokenResponse) ProtoMessage() {}

func (x *SaveTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveTokenResponse.ProtoReflect.Descriptor instead.
func (*SaveTokenResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{27}
}

type ClearTokenRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearTokenRequest) Reset() {
	*x = ClearTokenRequest{}
	mi := &file_community_v1_feed_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearTokenRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearTokenRequest) ProtoMessage() {}

func (x *ClearTokenRequest) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearTokenRequest.ProtoReflect.Descriptor instead.
func (*ClearTokenRequest) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{28}
}

type ClearTokenResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearTokenResponse) Reset() {
	*x = ClearTokenResponse{}
	mi := &file_community_v1_feed_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearTokenResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearTokenResponse) ProtoMessage() {}

func (x *ClearTokenResponse) ProtoReflect() protoreflect.Message {
	mi := &file_community_v1_feed_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearTokenResponse.ProtoReflect.Descriptor instead.
func (*ClearTokenResponse) Descriptor() ([]byte, []int) {
	return file_community_v1_feed_proto_rawDescGZIP(), []int{29}
}

var File_community_v1_feed_proto protoreflect.FileDescriptor

const file_community_v1_feed_proto_rawDesc = "" +
	"\n" +
	"\x17community/v1/feed.proto\x12\fcommunity.v1\"U\n" +
	"\n" +
	"ListStatus\x12\x14\n" +
	"\x05state\x18\x01 \x01(\tR\x05state\x12\x19\n" +
	"\bhas_more\x18\x02 \x01(\bR\ahasMore\x12\x16\n" +
	"\x06notice\x18\x03 \x01(\tR\x06notice\"\xe6\x01\n" +
	"\bNewsItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x18\n" +
	"\asummary\x18\x03 \x01(\tR\asummary\x12\x1b\n" +
	"\timage_url\x18\x04 \x01(\tR\bimageUrl\x12\x16\n" +
	"\x06author\x18\x05 \x01(\tR\x06author\x12\x1d\n" +
	"\n" +
	"like_count\x18\x06 \x01(\x05R\tlikeCount\x12#\n" +
	"\rcomment_count\x18\a \x01(\x05R\fcommentCount\x12!\n" +
	"\fpublished_at\x18\b \x01(\tR\vpublishedAt\"\xc5\x01\n" +
	"\fGalleryImage\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x10\n" +
	"\x03url\x18\x03 \x01(\tR\x03url\x12#\n" +
	"\rthumbnail_url\x18\x04 \x01(\tR\fthumbnailUrl\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1f\n" +
	"\vuploaded_by\x18\x06 \x01(\tR\n" +
	"uploadedBy\x12\x1f\n" +
	"\vuploaded_at\x18\a \x01(\tR\n" +
	"uploadedAt\"u\n" +
	"\n" +
	"ActiveUser\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\x12\x1d\n" +
	"\n" +
	"avatar_url\x18\x03 \x01(\tR\tavatarUrl\x12\x1b\n" +
	"\tlast_seen\x18\x04 \x01(\tR\blastSeen\"\xf9\x01\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12%\n" +
	"\x0esubcategory_id\x18\x03 \x01(\tR\rsubcategoryId\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\x01R\x06amount\x12#\n" +
	"\rcurrency_code\x18\x06 \x01(\tR\fcurrencyCode\x12\x17\n" +
	"\atx_date\x18\a \x01(\tR\x06txDate\x12\x1f\n" +
	"\vrecorded_by\x18\b \x01(\tR\n" +
	"recordedBy\x12\x12\n" +
	"\x04note\x18\t \x01(\tR\x04note\"\x85\x01\n" +
	"\bCategory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x16\n" +
	"\x06pinned\x18\x04 \x01(\bR\x06pinned\x12\x1b\n" +
	"\tpinned_at\x18\x05 \x01(\tR\bpinnedAt\"R\n" +
	"\vSubcategory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcategory_id\x18\x02 \x01(\tR\n" +
	"categoryId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\"L\n" +
	"\x06Totals\x12\x16\n" +
	"\x06income\x18\x01 \x01(\x01R\x06income\x12\x18\n" +
	"\aexpense\x18\x02 \x01(\x01R\aexpense\x12\x10\n" +
	"\x03net\x18\x03 \x01(\x01R\x03net\"C\n" +
	"\x0fLoadNewsRequest\x120\n" +
	"\x06action\x18\x01 \x01(\x0e2\x18.community.v1.LoadActionR\x06action\"r\n" +
	"\x10LoadNewsResponse\x12,\n" +
	"\x05items\x18\x01 \x03(\v2\x16.community.v1.NewsItemR\x05items\x120\n" +
	"\x06status\x18\x02 \x01(\v2\x18.community.v1.ListStatusR\x06status\"\x8e\x01\n" +
	"\x12LoadGalleryRequest\x120\n" +
	"\x06action\x18\x01 \x01(\x0e2\x18.community.v1.LoadActionR\x06action\x12#\n" +
	"\rstatus_filter\x18\x02 \x01(\tR\fstatusFilter\x12!\n" +
	"\fapply_filter\x18\x03 \x01(\bR\vapplyFilter\"y\n" +
	"\x13LoadGalleryResponse\x120\n" +
	"\x05items\x18\x01 \x03(\v2\x1a.community.v1.GalleryImageR\x05items\x120\n" +
	"\x06status\x18\x02 \x01(\v2\x18.community.v1.ListStatusR\x06status\"}\n" +
	"\x16LoadActiveUsersRequest\x120\n" +
	"\x06action\x18\x01 \x01(\x0e2\x18.community.v1.LoadActionR\x06action\x12\x12\n" +
	"\x04date\x18\x02 \x01(\tR\x04date\x12\x1d\n" +
	"\n" +
	"apply_date\x18\x03 \x01(\bR\tapplyDate\"{\n" +
	"\x17LoadActiveUsersResponse\x12.\n" +
	"\x05items\x18\x01 \x03(\v2\x18.community.v1.ActiveUserR\x05items\x120\n" +
	"\x06status\x18\x02 \x01(\v2\x18.community.v1.ListStatusR\x06status\"\xa4\x02\n" +
	"\x17LoadTransactionsRequest\x120\n" +
	"\x06action\x18\x01 \x01(\x0e2\x18.community.v1.LoadActionR\x06action\x12%\n" +
	"\x0esubcategory_id\x18\x02 \x01(\tR\rsubcategoryId\x12\x1d\n" +
	"\n" +
	"start_date\x18\x03 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x04 \x01(\tR\aendDate\x12!\n" +
	"\fapply_filter\x18\x05 \x01(\bR\vapplyFilter\x12\x17\n" +
	"\asort_by\x18\x06 \x01(\tR\x06sortBy\x12\x1d\n" +
	"\n" +
	"sort_order\x18\a \x01(\tR\tsortOrder\x12\x1b\n" +
	"\tmore_kind\x18\b \x01(\tR\bmoreKind\"\xe7\x01\n" +
	"\x18LoadTransactionsResponse\x12/\n" +
	"\x05items\x18\x01 \x03(\v2\x19.community.v1.TransactionR\x05items\x12,\n" +
	"\x06totals\x18\x02 \x01(\v2\x14.community.v1.TotalsR\x06totals\x126\n" +
	"\tdonations\x18\x03 \x01(\v2\x18.community.v1.ListStatusR\tdonations\x124\n" +
	"\bexpenses\x18\x04 \x01(\v2\x18.community.v1.ListStatusR\bexpenses\"\x17\n" +
	"\x15ListCategoriesRequest\"P\n" +
	"\x16ListCategoriesResponse\x126\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x16.community.v1.CategoryR\n" +
	"categories\";\n" +
	"\x18ListSubcategoriesRequest\x12\x1f\n" +
	"\vcategory_id\x18\x01 \x01(\tR\n" +
	"categoryId\"\\\n" +
	"\x19ListSubcategoriesResponse\x12?\n" +
	"\rsubcategories\x18\x01 \x03(\v2\x19.community.v1.SubcategoryR\rsubcategories\"5\n" +
	"\x12PinCategoryRequest\x12\x1f\n" +
	"\vcategory_id\x18\x01 \x01(\tR\n" +
	"categoryId\"M\n" +
	"\x13PinCategoryResponse\x126\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x16.community.v1.CategoryR\n" +
	"categories\"7\n" +
	"\x14UnpinCategoryRequest\x12\x1f\n" +
	"\vcategory_id\x18\x01 \x01(\tR\n" +
	"categoryId\"O\n" +
	"\x15UnpinCategoryResponse\x126\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x16.community.v1.CategoryR\n" +
	"categories\"\x1b\n" +
	"\x19ExportTransactionsRequest\"L\n" +
	"\x1aExportTransactionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"(\n" +
	"\x10SaveTokenRequest\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\"\x13\n" +
	"\x11SaveTokenResponse\"\x13\n" +
	"\x11ClearTokenRequest\"\x14\n" +
	"\x12ClearTokenResponse*q\n" +
	"\n" +
	"LoadAction\x12\x1b\n" +
	"\x17LOAD_ACTION_UNSPECIFIED\x10\x00\x12\x17\n" +
	"\x13LOAD_ACTION_INITIAL\x10\x01\x12\x17\n" +
	"\x13LOAD_ACTION_REFRESH\x10\x02\x12\x14\n" +
	"\x10LOAD_ACTION_MORE\x10\x032\xc9\x06\n" +
	"\vFeedService\x12I\n" +
	"\bLoadNews\x12\x1d.community.v1.LoadNewsRequest\x1a\x1e.community.v1.LoadNewsResponse\x12R\n" +
	"\vLoadGallery\x12 .community.v1.LoadGalleryRequest\x1a!.community.v1.LoadGalleryResponse\x12^\n" +
	"\x0fLoadActiveUsers\x12$.community.v1.LoadActiveUsersRequest\x1a%.community.v1.LoadActiveUsersResponse\x12a\n" +
	"\x10LoadTransactions\x12%.community.v1.LoadTransactionsRequest\x1a&.community.v1.LoadTransactionsResponse\x12[\n" +
	"\x0eListCategories\x12#.community.v1.ListCategoriesRequest\x1a$.community.v1.ListCategoriesResponse\x12d\n" +
	"\x11ListSubcategories\x12&.community.v1.ListSubcategoriesRequest\x1a'.community.v1.ListSubcategoriesResponse\x12R\n" +
	"\vPinCategory\x12 .community.v1.PinCategoryRequest\x1a!.community.v1.PinCategoryResponse\x12X\n" +
	"\rUnpinCategory\x12\".community.v1.UnpinCategoryRequest\x1a#.community.v1.UnpinCategoryResponse\x12g\n" +
	"\x12ExportTransactions\x12'.community.v1.ExportTransactionsRequest\x1a(.community.v1.ExportTransactionsResponse2\xac\x01\n" +
	"\vAuthService\x12L\n" +
	"\tSaveToken\x12\x1e.community.v1.SaveTokenRequest\x1a\x1f.community.v1.SaveTokenResponse\x12O\n" +
	"\n" +
	"ClearToken\x12\x1f.community.v1.ClearTokenRequest\x1a .community.v1.ClearTokenResponseBGZEgithub.com/communityhub/mobilecore/gen/proto/community/v1;communitypbb\x06proto3"

var (
	file_community_v1_feed_proto_rawDescOnce sync.Once
	file_community_v1_feed_proto_rawDescData []byte
)

func file_community_v1_feed_proto_rawDescGZIP() []byte {
	file_community_v1_feed_proto_rawDescOnce.Do(func() {
		file_community_v1_feed_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_community_v1_feed_proto_rawDesc), len(file_community_v1_feed_proto_rawDesc)))
	})
	return file_community_v1_feed_proto_rawDescData
}

var file_community_v1_feed_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_community_v1_feed_proto_msgTypes = make([]protoimpl.MessageInfo, 30)
var file_community_v1_feed_proto_goTypes = []any{
	(LoadAction)(0),                    // 0: community.v1.LoadAction
	(*ListStatus)(nil),                 // 1: community.v1.ListStatus
	(*NewsItem)(nil),                   // 2: community.v1.NewsItem
	(*GalleryImage)(nil),               // 3: community.v1.GalleryImage
	(*ActiveUser)(nil),                 // 4: community.v1.ActiveUser
	(*Transaction)(nil),                // 5: community.v1.Transaction
	(*Category)(nil),                   // 6: community.v1.Category
	(*Subcategory)(nil),                // 7: community.v1.Subcategory
	(*Totals)(nil),                     // 8: community.v1.Totals
	(*LoadNewsRequest)(nil),            // 9: community.v1.LoadNewsRequest
	(*LoadNewsResponse)(nil),           // 10: community.v1.LoadNewsResponse
	(*LoadGalleryRequest)(nil),         // 11: community.v1.LoadGalleryRequest
	(*LoadGalleryResponse)(nil),        // 12: community.v1.LoadGalleryResponse
	(*LoadActiveUsersRequest)(nil),     // 13: community.v1.LoadActiveUsersRequest
	(*LoadActiveUsersResponse)(nil),    // 14: community.v1.LoadActiveUsersResponse
	(*LoadTransactionsRequest)(nil),    // 15: community.v1.LoadTransactionsRequest
	(*LoadTransactionsResponse)(nil),   // 16: community.v1.LoadTransactionsResponse
	(*ListCategoriesRequest)(nil),      // 17: community.v1.ListCategoriesRequest
	(*ListCategoriesResponse)(nil),     // 18: community.v1.ListCategoriesResponse
	(*ListSubcategoriesRequest)(nil),   // 19: community.v1.ListSubcategoriesRequest
	(*ListSubcategoriesResponse)(nil),  // 20: community.v1.ListSubcategoriesResponse
	(*PinCategoryRequest)(nil),         // 21: community.v1.PinCategoryRequest
	(*PinCategoryResponse)(nil),        // 22: community.v1.PinCategoryResponse
	(*UnpinCategoryRequest)(nil),       // 23: community.v1.UnpinCategoryRequest
	(*UnpinCategoryResponse)(nil),      // 24: community.v1.UnpinCategoryResponse
	(*ExportTransactionsRequest)(nil),  // 25: community.v1.ExportTransactionsRequest
	(*ExportTransactionsResponse)(nil), // 26: community.v1.ExportTransactionsResponse
	(*SaveTokenRequest)(nil),           // 27: community.v1.SaveTokenRequest
	(*SaveTokenResponse)(nil),          // 28: community.v1.SaveTokenResponse
	(*ClearTokenRequest)(nil),          // 29: community.v1.ClearTokenRequest
	(*ClearTokenResponse)(nil),         // 30: community.v1.ClearTokenResponse
}
var file_community_v1_feed_proto_depIdxs = []int32{
	0,  // 0: community.v1.LoadNewsRequest.action:type_name -> community.v1.LoadAction
	2,  // 1: community.v1.LoadNewsResponse.items:type_name -> community.v1.NewsItem
	1,  // 2: community.v1.LoadNewsResponse.status:type_name -> community.v1.ListStatus
	0,  // 3: community.v1.LoadGalleryRequest.action:type_name -> community.v1.LoadAction
	3,  // 4: community.v1.LoadGalleryResponse.items:type_name -> community.v1.GalleryImage
	1,  // 5: community.v1.LoadGalleryResponse.status:type_name -> community.v1.ListStatus
	0,  // 6: community.v1.LoadActiveUsersRequest.action:type_name -> community.v1.LoadAction
	4,  // 7: community.v1.LoadActiveUsersResponse.items:type_name -> community.v1.ActiveUser
	1,  // 8: community.v1.LoadActiveUsersResponse.status:type_name -> community.v1.ListStatus
	0,  // 9: community.v1.LoadTransactionsRequest.action:type_name -> community.v1.LoadAction
	5,  // 10: community.v1.LoadTransactionsResponse.items:type_name -> community.v1.Transaction
	8,  // 11: community.v1.LoadTransactionsResponse.totals:type_name -> community.v1.Totals
	1,  // 12: community.v1.LoadTransactionsResponse.donations:type_name -> community.v1.ListStatus
	1,  // 13: community.v1.LoadTransactionsResponse.expenses:type_name -> community.v1.ListStatus
	6,  // 14: community.v1.ListCategoriesResponse.categories:type_name -> community.v1.Category
	7,  // 15: community.v1.ListSubcategoriesResponse.subcategories:type_name -> community.v1.Subcategory
	6,  // 16: community.v1.PinCategoryResponse.categories:type_name -> community.v1.Category
	6,  // 17: community.v1.UnpinCategoryResponse.categories:type_name -> community.v1.Category
	9,  // 18: community.v1.FeedService.LoadNews:input_type -> community.v1.LoadNewsRequest
	11, // 19: community.v1.FeedService.LoadGallery:input_type -> community.v1.LoadGalleryRequest
	13, // 20: community.v1.FeedService.LoadActiveUsers:input_type -> community.v1.LoadActiveUsersRequest
	15, // 21: community.v1.FeedService.LoadTransactions:input_type -> community.v1.LoadTransactionsRequest
	17, // 22: community.v1.FeedService.ListCategories:input_type -> community.v1.ListCategoriesRequest
	19, // 23: community.v1.FeedService.ListSubcategories:input_type -> community.v1.ListSubcategoriesRequest
	21, // 24: community.v1.FeedService.PinCategory:input_type -> community.v1.PinCategoryRequest
	23, // 25: community.v1.FeedService.UnpinCategory:input_type -> community.v1.UnpinCategoryRequest
	25, // 26: community.v1.FeedService.ExportTransactions:input_type -> community.v1.ExportTransactionsRequest
	27, // 27: community.v1.AuthService.SaveToken:input_type -> community.v1.SaveTokenRequest
	29, // 28: community.v1.AuthService.ClearToken:input_type -> community.v1.ClearTokenRequest
	10, // 29: community.v1.FeedService.LoadNews:output_type -> community.v1.LoadNewsResponse
	12, // 30: community.v1.FeedService.LoadGallery:output_type -> community.v1.LoadGalleryResponse
	14, // 31: community.v1.FeedService.LoadActiveUsers:output_type -> community.v1.LoadActiveUsersResponse
	16, // 32: community.v1.FeedService.LoadTransactions:output_type -> community.v1.LoadTransactionsResponse
	18, // 33: community.v1.FeedService.ListCategories:output_type -> community.v1.ListCategoriesResponse
	20, // 34: community.v1.FeedService.ListSubcategories:output_type -> community.v1.ListSubcategoriesResponse
	22, // 35: community.v1.FeedService.PinCategory:output_type -> community.v1.PinCategoryResponse
	24, // 36: community.v1.FeedService.UnpinCategory:output_type -> community.v1.UnpinCategoryResponse
	26, // 37: community.v1.FeedService.ExportTransactions:output_type -> community.v1.ExportTransactionsResponse
	28, // 38: community.v1.AuthService.SaveToken:output_type -> community.v1.SaveTokenResponse
	30, // 39: community.v1.AuthService.ClearToken:output_type -> community.v1.ClearTokenResponse
	29, // [29:40] is the sub-list for method output_type
	18, // [18:29] is the sub-list for method input_type
	18, // [18:18] is the sub-list for extension type_name
	18, // [18:18] is the sub-list for extension extendee
	0,  // [0:18] is the sub-list for field type_name
}

func init() { file_community_v1_feed_proto_init() }
func file_community_v1_feed_proto_init() {
	if File_community_v1_feed_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_community_v1_feed_proto_rawDesc), len(file_community_v1_feed_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   30,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_community_v1_feed_proto_goTypes,
		DependencyIndexes: file_community_v1_feed_proto_depIdxs,
		EnumInfos:         file_community_v1_feed_proto_enumTypes,
		MessageInfos:      file_community_v1_feed_proto_msgTypes,
	}.Build()
	File_community_v1_feed_proto = out.File
	file_community_v1_feed_proto_goTypes = nil
	file_community_v1_feed_proto_depIdxs = nil
}
