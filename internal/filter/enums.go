// Copyright 2026 The sb2dot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package filter

import "fmt"

// socketDomainNames covers AF_UNSPEC (0) through AF_MULTIPATH (39); any
// other value stringifies as its decimal form.
var socketDomainNames = [...]string{
	"AF_UNSPEC", "AF_UNIX", "AF_INET", "AF_IMPLINK", "AF_PUP", "AF_CHAOS",
	"AF_NS", "AF_ISO", "AF_ECMA", "AF_DATAKIT", "AF_CCITT", "AF_SNA",
	"AF_DECnet", "AF_DLI", "AF_LAT", "AF_HYLINK", "AF_APPLETALK", "AF_ROUTE",
	"AF_LINK", "AF_XTP", "AF_COIP", "AF_CNT", "AF_RTIP", "AF_IPX", "AF_SIP",
	"AF_PIP", "AF_BLUE", "AF_NDRV", "AF_ISDN", "AF_KEY", "AF_INET6",
	"AF_NATM", "AF_SYSTEM", "AF_NETBIOS", "AF_PPP", "AF_HDRCMPLT",
	"AF_RESERVED", "AF_IEEE80211", "AF_UTUN", "AF_MULTIPATH",
}

func socketDomainName(v uint16) string {
	if int(v) < len(socketDomainNames) {
		return socketDomainNames[v]
	}
	return fmt.Sprintf("%d", v)
}

func socketProtocolName(v uint16) string {
	if v == 2 {
		return "SYSPROTO_CONTROL"
	}
	return fmt.Sprintf("%d", v)
}

var targetLikeNames = [...]string{"", "self", "pgrp", "others", "children", "same-sandbox", "initproc"}

// targetName covers the `target` filter (1-5).
func targetName(v uint16) string {
	return targetLikeName(v, false)
}

// targetLikeName covers both `target` (1-5) and `semaphore-owner` (1-6,
// withSixth set); the two filters share the same self/pgrp/others/
// children/same-sandbox vocabulary, semaphore-owner adding "initproc".
// Zero is the reserved error value, kept distinct from the plain unknown
// rendering.
func targetLikeName(v uint16, withSixth bool) string {
	if v == 0 {
		return "unknown - error ???"
	}
	max := 5
	if withSixth {
		max = 6
	}
	if int(v) <= max {
		return targetLikeNames[v]
	}
	return fmt.Sprintf("unknown: %d", v)
}

func vnodeTypeName(v uint16) string {
	switch v {
	case 0:
		return "unknown - error ???"
	case 1:
		return "REGULAR-FILE"
	case 2:
		return "DIRECTORY"
	case 3:
		return "BLOCK-DEVICE"
	case 4:
		return "CHARACTER-DEVICE"
	case 5:
		return "SYMLINK"
	case 6:
		return "SOCKET"
	case 7:
		return "FIFO"
	case 65535:
		return "TTY"
	default:
		return fmt.Sprintf("unknown: %d", v)
	}
}

func processAttributeName(v uint16) string {
	switch v {
	case 0:
		return "is-plugin"
	case 1:
		return "is-installer"
	case 2:
		return "is-restricted"
	case 3:
		return "is-initproc"
	default:
		return fmt.Sprintf("unknown: %d", v)
	}
}

var privilegeIDNames = map[uint16]string{
	1000:  "PRIV_ADJTIME",
	1001:  "PRIV_PROC_UUID_POLICY",
	1002:  "PRIV_GLOBAL_PROC_INFO",
	1003:  "PRIV_SYSTEM_OVERRIDE",
	1004:  "PRIV_HW_DEBUG_DATA",
	1005:  "PRIV_SELECTIVE_FORCED_IDLE",
	1006:  "PRIV_PROC_TRACE_INSPECT",
	1008:  "PRIV_KERNEL_WORK_INTERNAL",
	6000:  "PRIV_VM_PRESSURE",
	6001:  "PRIV_VM_JETSAM",
	6002:  "PRIV_VM_FOOTPRINT_LIMIT",
	10000: "PRIV_NET_PRIVILEGED_TRAFFIC_CLASS",
	10001: "PRIV_NET_PRIVILEGED_SOCKET_DELEGATE",
	10002: "PRIV_NET_INTERFACE_CONTROL",
	10003: "PRIV_NET_PRIVILEGED_NETWORK_STATISTICS",
	10004: "PRIV_NET_PRIVILEGED_NECP_POLICIES",
	10005: "PRIV_NET_RESTRICTED_AWDL",
	10006: "PRIV_NET_PRIVILEGED_NECP_MATCH",
	11000: "PRIV_NETINET_RESERVEDPORT",
	14000: "PRIV_VFS_OPEN_BY_ID",
}

func privilegeIDName(v uint16) string {
	if name, ok := privilegeIDNames[v]; ok {
		return name
	}
	return fmt.Sprintf("%d", v)
}

var csrNames = map[uint16]string{
	1:   "CSR_ALLOW_UNTRUSTED_KEXTS",
	2:   "CSR_ALLOW_UNRESTRICTED_FS",
	4:   "CSR_ALLOW_TASK_FOR_PID",
	8:   "CSR_ALLOW_KERNEL_DEBUGGER",
	16:  "CSR_ALLOW_APPLE_INTERNAL",
	32:  "CSR_ALLOW_UNRESTRICTED_DTRACE",
	64:  "CSR_ALLOW_UNRESTRICTED_NVRAM",
	128: "CSR_ALLOW_DEVICE_CONFIGURATION",
}

func csrName(v uint16) string {
	if name, ok := csrNames[v]; ok {
		return name
	}
	return fmt.Sprintf("unknown: %d", v)
}

var hostSpecialPortNames = map[uint16]string{
	8:  "HOST_DYNAMIC_PAGER_PORT",
	9:  "HOST_AUDIT_CONTROL_PORT",
	10: "HOST_USER_NOTIFICATION_PORT",
	11: "HOST_AUTOMOUNTD_PORT",
	12: "HOST_LOCKD_PORT",
	13: "unknown: 13",
	14: "HOST_SEATBELT_PORT",
	15: "HOST_KEXTD_PORT",
	16: "HOST_CHUD_PORT",
	17: "HOST_UNFREED_PORT",
	18: "HOST_AMFID_PORT",
	19: "HOST_GSSD_PORT",
	20: "HOST_TELEMETRY_PORT",
	21: "HOST_ATM_NOTIFICATION_PORT",
	22: "HOST_COALITION_PORT",
	23: "HOST_SYSDIAGNOSE_PORT",
	24: "HOST_XPC_EXCEPTION_PORT",
	25: "HOST_CONTAINERD_PORT",
}

func hostSpecialPortName(v uint16) string {
	if name, ok := hostSpecialPortNames[v]; ok {
		return name
	}
	return fmt.Sprintf("unknown: %d", v)
}

// enumValueKnown reports whether an inline-enum filter's argument falls
// inside its named range. Only the kinds whose fallback renders the
// "unknown" form are checked; kinds that fall back to a plain decimal
// (socket-domain, socket-type, socket-protocol, privilege-id, uid and the
// raw hex/octal kinds) accept any value.
func enumValueKnown(k Kind, v uint16) bool {
	switch k {
	case KindTarget:
		return v >= 1 && v <= 5
	case KindSemaphoreOwner:
		return v >= 1 && v <= 6
	case KindVnodeType:
		return (v >= 1 && v <= 7) || v == 65535
	case KindProcessAttribute:
		return v <= 3
	case KindCsr:
		_, ok := csrNames[v]
		return ok
	case KindHostSpecialPort:
		_, ok := hostSpecialPortNames[v]
		return ok
	}
	return true
}
