package i18n

type MessageKey string

const (
	InvalidDates    MessageKey = "invalidDates"
	SelectRoom      MessageKey = "selectRoom"
	RequiredField   MessageKey = "requiredField"
	InvalidEmail    MessageKey = "invalidEmail"
	InvalidPhone    MessageKey = "invalidPhone"
	BookingFailed   MessageKey = "bookingFailed"
	MissingFields   MessageKey = "missingFields"
	RoomUnavailable MessageKey = "roomUnavailable"
	BackendDown     MessageKey = "backendDown"
)

var messages = map[MessageKey]Text{
	InvalidDates: {
		Korean:   "체크아웃 날짜는 체크인 날짜 이후여야 합니다",
		English:  "Check-out date must be after check-in date",
		Japanese: "チェックアウト日はチェックイン日より後である必要があります",
		Chinese:  "退房日期必须晚于入住日期",
	},
	SelectRoom: {
		Korean:   "객실을 선택해주세요",
		English:  "Please select a room",
		Japanese: "客室を選択してください",
		Chinese:  "请选择客房",
	},
	RequiredField: {
		Korean:   "필수 입력 항목입니다",
		English:  "This field is required",
		Japanese: "必須項目です",
		Chinese:  "此项为必填项",
	},
	InvalidEmail: {
		Korean:   "올바른 이메일 주소를 입력해주세요",
		English:  "Please enter a valid email address",
		Japanese: "有効なメールアドレスを入力してください",
		Chinese:  "请输入有效的电子邮件地址",
	},
	InvalidPhone: {
		Korean:   "올바른 전화번호를 입력해주세요",
		English:  "Please enter a valid phone number",
		Japanese: "有効な電話番号を入力してください",
		Chinese:  "请输入有效的电话号码",
	},
	BookingFailed: {
		Korean:   "예약에 실패했습니다. 다시 시도해주세요",
		English:  "Booking failed. Please try again",
		Japanese: "予約に失敗しました。もう一度お試しください",
		Chinese:  "预订失败，请重试",
	},
	MissingFields: {
		Korean:   "필수 항목이 누락되었습니다",
		English:  "Missing required fields",
		Japanese: "必須項目が入力されていません",
		Chinese:  "缺少必填字段",
	},
	RoomUnavailable: {
		Korean:   "선택하신 날짜에는 예약할 수 없는 객실입니다",
		English:  "Room is not available for the selected dates",
		Japanese: "選択された日程ではこの客室をご利用いただけません",
		Chinese:  "所选日期该客房不可预订",
	},
	BackendDown: {
		Korean:   "예약 시스템에 연결할 수 없습니다",
		English:  "Failed to connect to booking system",
		Japanese: "予約システムに接続できません",
		Chinese:  "无法连接预订系统",
	},
}

// Message returns the localized text for key. Unknown keys come back as the
// key itself so a missing entry is visible rather than blank.
func Message(l Locale, key MessageKey) string {
	t, ok := messages[key]
	if !ok {
		return string(key)
	}

	return t.Get(l)
}
